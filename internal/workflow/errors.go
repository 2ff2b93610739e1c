package workflow

import "errors"

// Kategori error inti workflow. Handler memetakan ini ke HTTP status,
// jadi semua layer di bawahnya cukup membungkus dengan %w.
var (
	ErrValidation        = errors.New("data pengajuan tidak valid")
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrForbidden         = errors.New("role tidak berhak pada tahap ini")
	ErrInvalidTransition = errors.New("status tidak mengizinkan aksi ini")
	ErrStoreUnavailable  = errors.New("penyimpanan sedang tidak tersedia")
)
