package handlers

import (
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/vote"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Vote     *VoteHandler
	Kandidat *KandidatHandler
	Eskul    *EskulHandler
	School   *SchoolHandler
	Jadwal   *JadwalHandler
	Ujian    *UjianHandler
}

// NewHandler creates a unified handler with all sub-handlers. The vote ledger
// and aggregator share one store built on the injected DB handle.
func NewHandler(db *gorm.DB) *Handler {
	store := vote.NewGormStore(db)

	return &Handler{
		Auth:     NewAuthHandler(db),
		Vote:     NewVoteHandler(vote.NewLedger(store), vote.NewAggregator(store)),
		Kandidat: NewKandidatHandler(db),
		Eskul:    NewEskulHandler(db),
		School:   NewSchoolHandler(db),
		Jadwal:   NewJadwalHandler(db),
		Ujian:    NewUjianHandler(db),
	}
}
