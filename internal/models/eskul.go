package models

import "time"

// Eskul is an extracurricular activity students can sign up for.
type Eskul struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	NamaEskul    string    `gorm:"not null" json:"nama_eskul"`
	Deskripsi    string    `json:"deskripsi"`
	Logo         string    `json:"logo"`
	KontakCenter string    `json:"kontak_center"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EskulPilihan records a student's choice of eskul, one row per (user, eskul).
type EskulPilihan struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"uniqueIndex:idx_pilihan_user_eskul" json:"user_id"`
	EskulID   int       `gorm:"uniqueIndex:idx_pilihan_user_eskul" json:"eskul_id"`
	Status    string    `gorm:"default:pending" json:"status"` // pending, approved, rejected
	Eskul     Eskul     `gorm:"foreignKey:EskulID" json:"eskul"`
	CreatedAt time.Time `json:"created_at"`
}
