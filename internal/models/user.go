package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	NisnNip  string `gorm:"uniqueIndex;not null" json:"nisn_nip"`
	Nama     string `gorm:"not null" json:"nama"`
	Email    string `json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:siswa" json:"role"` // "admin" or "siswa"
	Jurusan  string `json:"jurusan"`
	Kelas    string `json:"kelas"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role values accepted by the middleware role gate.
const (
	RoleAdmin = "admin"
	RoleSiswa = "siswa"
)

type RegisterRequest struct {
	Nama     string `json:"nama"`
	NisnNip  string `json:"nisn_nip"`
	Password string `json:"password"`
	Jurusan  string `json:"jurusan"`
	Kelas    string `json:"kelas"`
}

type LoginRequest struct {
	NisnNip  string `json:"nisn_nip"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}
