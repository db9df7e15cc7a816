package models

import "time"

// SchoolInfo holds the school profile shown on the landing page.
// Only the most recent row is served.
type SchoolInfo struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	NamaSekolah string    `gorm:"not null" json:"nama_sekolah"`
	Alamat      string    `json:"alamat"`
	Telepon     string    `json:"telepon"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Deskripsi   string    `json:"deskripsi"`
	Jurusan     string    `json:"jurusan"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Jadwal is a class schedule entry.
type Jadwal struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Hari          string    `gorm:"not null" json:"hari"`
	JamMulai      string    `gorm:"not null" json:"jam_mulai"`
	JamSelesai    string    `gorm:"not null" json:"jam_selesai"`
	MataPelajaran string    `gorm:"not null" json:"mata_pelajaran"`
	Guru          string    `json:"guru"`
	Kelas         string    `json:"kelas"`
	Jurusan       string    `json:"jurusan"`
	CreatedAt     time.Time `json:"created_at"`
}

// Ujian is a published exam link.
type Ujian struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	NamaUjian      string     `gorm:"not null" json:"nama_ujian"`
	LinkUjian      string     `gorm:"not null" json:"link_ujian"`
	Deskripsi      string     `json:"deskripsi"`
	TanggalMulai   *time.Time `json:"tanggal_mulai"`
	TanggalSelesai *time.Time `json:"tanggal_selesai"`
	CreatedAt      time.Time  `json:"created_at"`
}
