package workflow

// TerakhirPerKunci mereduksi daftar terurut naik menjadi satu entri per
// kunci, entri paling akhir yang menang. Dipakai di boundary tampilan
// untuk timeline (satu baris per jenis aksi); log tersimpan tetap utuh.
func TerakhirPerKunci[T any](items []T, kunci func(T) string) []T {
	posisi := map[string]int{}
	var hasil []T
	for _, it := range items {
		k := kunci(it)
		if i, ok := posisi[k]; ok {
			hasil[i] = it
			continue
		}
		posisi[k] = len(hasil)
		hasil = append(hasil, it)
	}
	return hasil
}
