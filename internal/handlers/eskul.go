package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

type EskulHandler struct {
	db *gorm.DB
}

func NewEskulHandler(db *gorm.DB) *EskulHandler {
	return &EskulHandler{db: db}
}

// GetEskul returns all extracurriculars
func (h *EskulHandler) GetEskul(c *gin.Context) {
	var eskul []models.Eskul

	if err := h.db.Order("nama_eskul asc").Find(&eskul).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch eskul"})
		return
	}

	if eskul == nil {
		eskul = []models.Eskul{}
	}

	c.JSON(http.StatusOK, eskul)
}

// CreateEskul adds an extracurricular (PROTECTED - admin only)
func (h *EskulHandler) CreateEskul(c *gin.Context) {
	var input struct {
		NamaEskul    string `json:"nama_eskul" binding:"required"`
		Deskripsi    string `json:"deskripsi"`
		Logo         string `json:"logo"`
		KontakCenter string `json:"kontak_center"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nama_eskul is required"})
		return
	}

	eskul := models.Eskul{
		NamaEskul:    input.NamaEskul,
		Deskripsi:    input.Deskripsi,
		Logo:         input.Logo,
		KontakCenter: input.KontakCenter,
	}

	if err := h.db.Create(&eskul).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create eskul"})
		return
	}

	c.JSON(http.StatusCreated, eskul)
}

// UpdateEskul updates an extracurricular (PROTECTED - admin only)
func (h *EskulHandler) UpdateEskul(c *gin.Context) {
	eskulID := c.Param("id")

	var eskul models.Eskul
	if err := h.db.First(&eskul, eskulID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eskul not found"})
		return
	}

	var input struct {
		NamaEskul    string `json:"nama_eskul"`
		Deskripsi    string `json:"deskripsi"`
		Logo         string `json:"logo"`
		KontakCenter string `json:"kontak_center"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NamaEskul != "" {
		eskul.NamaEskul = input.NamaEskul
	}
	if input.Deskripsi != "" {
		eskul.Deskripsi = input.Deskripsi
	}
	if input.Logo != "" {
		eskul.Logo = input.Logo
	}
	if input.KontakCenter != "" {
		eskul.KontakCenter = input.KontakCenter
	}

	if err := h.db.Save(&eskul).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update eskul"})
		return
	}

	c.JSON(http.StatusOK, eskul)
}

// DeleteEskul removes an extracurricular (PROTECTED - admin only)
func (h *EskulHandler) DeleteEskul(c *gin.Context) {
	eskulID := c.Param("id")

	if err := h.db.Delete(&models.Eskul{}, eskulID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete eskul"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Eskul deleted successfully"})
}

// PilihEskul records the caller's eskul choice (PROTECTED).
// A second choice of the same eskul is rejected, not overwritten.
func (h *EskulHandler) PilihEskul(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		EskulID int `json:"eskul_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eskul_id is required"})
		return
	}

	var eskul models.Eskul
	if err := h.db.First(&eskul, input.EskulID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eskul not found"})
		return
	}

	var existing models.EskulPilihan
	err := h.db.Where("user_id = ? AND eskul_id = ?", userID, input.EskulID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Anda sudah memilih eskul ini"})
		return
	}

	pilihan := models.EskulPilihan{
		UserID:  userID.(int),
		EskulID: input.EskulID,
	}

	// The unique (user_id, eskul_id) index catches the race the pre-check misses.
	if err := h.db.Create(&pilihan).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Anda sudah memilih eskul ini"})
		return
	}

	c.JSON(http.StatusCreated, pilihan)
}

// MyPilihan returns the caller's eskul choices (PROTECTED)
func (h *EskulHandler) MyPilihan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var pilihan []models.EskulPilihan
	if err := h.db.Preload("Eskul").Where("user_id = ?", userID).Find(&pilihan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pilihan"})
		return
	}

	if pilihan == nil {
		pilihan = []models.EskulPilihan{}
	}

	c.JSON(http.StatusOK, pilihan)
}

// DeletePilihan removes one of the caller's own eskul choices (PROTECTED)
func (h *EskulHandler) DeletePilihan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	pilihanID := c.Param("id")

	result := h.db.Where("id = ? AND user_id = ?", pilihanID, userID).Delete(&models.EskulPilihan{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pilihan"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pilihan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pilihan eskul dihapus"})
}
