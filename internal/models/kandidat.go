package models

import "time"

// Kandidat is a ballot candidate. Written only by admins; voters read the list
// and cast votes against a kandidat's id as the target.
type Kandidat struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	NamaKandidat  string    `gorm:"not null" json:"nama_kandidat"`
	NomorKandidat int       `json:"nomor_kandidat"`
	ImgURL        string    `json:"img_url"`
	Calon         string    `json:"calon"` // e.g. "ketos", "waketos"
	Tagline       string    `json:"tagline"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateKandidatRequest struct {
	NamaKandidat  string `json:"nama_kandidat"`
	NomorKandidat int    `json:"nomor_kandidat"`
	ImgURL        string `json:"img_url"`
	Calon         string `json:"calon"`
	Tagline       string `json:"tagline"`
}
