package mailer

import (
	"fmt"

	"sistem-cuti-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email ke karyawan saat pengajuannya mencapai
// status final. Kalau SMTP_HOST kosong, pengiriman di-skip diam-diam
// supaya dev lokal tidak butuh mail server.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host: config.GetEnv("SMTP_HOST", ""),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "no-reply@perusahaan.co.id"),
	}
}

func (m *Mailer) Aktif() bool {
	return m != nil && m.host != ""
}

// KirimStatusCuti memberi tahu pemohon bahwa pengajuannya sudah final.
func (m *Mailer) KirimStatusCuti(email, nama, label string) error {
	if !m.Aktif() || email == "" {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Update Pengajuan Cuti")
	msg.SetBody("text/plain", fmt.Sprintf("Halo %s,\n\nStatus pengajuan cuti Anda: %s.\n\nEmail ini dikirim otomatis, mohon tidak dibalas.", nama, label))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
