package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

type KandidatHandler struct {
	db *gorm.DB
}

func NewKandidatHandler(db *gorm.DB) *KandidatHandler {
	return &KandidatHandler{db: db}
}

// GetKandidat returns the candidate list, optionally filtered by calon
func (h *KandidatHandler) GetKandidat(c *gin.Context) {
	var kandidat []models.Kandidat

	query := h.db.Order("nomor_kandidat asc")
	if calon := c.Query("calon"); calon != "" {
		query = query.Where("calon = ?", calon)
	}

	if err := query.Find(&kandidat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch kandidat"})
		return
	}

	if kandidat == nil {
		kandidat = []models.Kandidat{}
	}

	c.JSON(http.StatusOK, kandidat)
}

// CreateKandidat adds a candidate (PROTECTED - admin only)
func (h *KandidatHandler) CreateKandidat(c *gin.Context) {
	var input struct {
		NamaKandidat  string `json:"nama_kandidat" binding:"required"`
		NomorKandidat int    `json:"nomor_kandidat"`
		ImgURL        string `json:"img_url"`
		Calon         string `json:"calon"`
		Tagline       string `json:"tagline"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nama_kandidat is required"})
		return
	}

	kandidat := models.Kandidat{
		NamaKandidat:  input.NamaKandidat,
		NomorKandidat: input.NomorKandidat,
		ImgURL:        input.ImgURL,
		Calon:         input.Calon,
		Tagline:       input.Tagline,
	}

	if err := h.db.Create(&kandidat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create kandidat"})
		return
	}

	c.JSON(http.StatusCreated, kandidat)
}

// UpdateKandidat updates a candidate (PROTECTED - admin only)
func (h *KandidatHandler) UpdateKandidat(c *gin.Context) {
	kandidatID := c.Param("id")

	var kandidat models.Kandidat
	if err := h.db.First(&kandidat, kandidatID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kandidat not found"})
		return
	}

	var input struct {
		NamaKandidat  string `json:"nama_kandidat"`
		NomorKandidat int    `json:"nomor_kandidat"`
		ImgURL        string `json:"img_url"`
		Calon         string `json:"calon"`
		Tagline       string `json:"tagline"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NamaKandidat != "" {
		kandidat.NamaKandidat = input.NamaKandidat
	}
	if input.NomorKandidat != 0 {
		kandidat.NomorKandidat = input.NomorKandidat
	}
	if input.ImgURL != "" {
		kandidat.ImgURL = input.ImgURL
	}
	if input.Calon != "" {
		kandidat.Calon = input.Calon
	}
	if input.Tagline != "" {
		kandidat.Tagline = input.Tagline
	}

	if err := h.db.Save(&kandidat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update kandidat"})
		return
	}

	c.JSON(http.StatusOK, kandidat)
}

// DeleteKandidat removes a candidate (PROTECTED - admin only)
func (h *KandidatHandler) DeleteKandidat(c *gin.Context) {
	kandidatID := c.Param("id")

	var kandidat models.Kandidat
	if err := h.db.First(&kandidat, kandidatID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kandidat not found"})
		return
	}

	if err := h.db.Delete(&kandidat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete kandidat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kandidat deleted successfully"})
}
