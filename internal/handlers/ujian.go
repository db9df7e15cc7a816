package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

// parseUjianTime accepts RFC 3339 or "2006-01-02 15:04" timestamps; an empty
// string means the field was not supplied.
func parseUjianTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02 15:04", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type UjianHandler struct {
	db *gorm.DB
}

func NewUjianHandler(db *gorm.DB) *UjianHandler {
	return &UjianHandler{db: db}
}

// GetUjian returns all published exam links
func (h *UjianHandler) GetUjian(c *gin.Context) {
	var ujian []models.Ujian

	if err := h.db.Order("created_at desc").Find(&ujian).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ujian"})
		return
	}

	if ujian == nil {
		ujian = []models.Ujian{}
	}

	c.JSON(http.StatusOK, ujian)
}

// CreateUjian publishes an exam link (PROTECTED - admin only)
func (h *UjianHandler) CreateUjian(c *gin.Context) {
	var input struct {
		NamaUjian      string `json:"nama_ujian" binding:"required"`
		LinkUjian      string `json:"link_ujian" binding:"required"`
		Deskripsi      string `json:"deskripsi"`
		TanggalMulai   string `json:"tanggal_mulai"`
		TanggalSelesai string `json:"tanggal_selesai"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nama_ujian and link_ujian are required"})
		return
	}

	ujian := models.Ujian{
		NamaUjian: input.NamaUjian,
		LinkUjian: input.LinkUjian,
		Deskripsi: input.Deskripsi,
	}
	if t, err := parseUjianTime(input.TanggalMulai); err == nil && t != nil {
		ujian.TanggalMulai = t
	}
	if t, err := parseUjianTime(input.TanggalSelesai); err == nil && t != nil {
		ujian.TanggalSelesai = t
	}

	if err := h.db.Create(&ujian).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ujian"})
		return
	}

	c.JSON(http.StatusCreated, ujian)
}

// UpdateUjian updates an exam link (PROTECTED - admin only)
func (h *UjianHandler) UpdateUjian(c *gin.Context) {
	ujianID := c.Param("id")

	var ujian models.Ujian
	if err := h.db.First(&ujian, ujianID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ujian not found"})
		return
	}

	var input struct {
		NamaUjian      string `json:"nama_ujian"`
		LinkUjian      string `json:"link_ujian"`
		Deskripsi      string `json:"deskripsi"`
		TanggalMulai   string `json:"tanggal_mulai"`
		TanggalSelesai string `json:"tanggal_selesai"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NamaUjian != "" {
		ujian.NamaUjian = input.NamaUjian
	}
	if input.LinkUjian != "" {
		ujian.LinkUjian = input.LinkUjian
	}
	if input.Deskripsi != "" {
		ujian.Deskripsi = input.Deskripsi
	}
	if t, err := parseUjianTime(input.TanggalMulai); err == nil && t != nil {
		ujian.TanggalMulai = t
	}
	if t, err := parseUjianTime(input.TanggalSelesai); err == nil && t != nil {
		ujian.TanggalSelesai = t
	}

	if err := h.db.Save(&ujian).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ujian"})
		return
	}

	c.JSON(http.StatusOK, ujian)
}

// DeleteUjian removes an exam link (PROTECTED - admin only)
func (h *UjianHandler) DeleteUjian(c *gin.Context) {
	ujianID := c.Param("id")

	if err := h.db.Delete(&models.Ujian{}, ujianID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ujian"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ujian deleted successfully"})
}
