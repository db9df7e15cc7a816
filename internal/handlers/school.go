package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

type SchoolHandler struct {
	db *gorm.DB
}

func NewSchoolHandler(db *gorm.DB) *SchoolHandler {
	return &SchoolHandler{db: db}
}

// GetSchoolInfo returns the most recent school profile
func (h *SchoolHandler) GetSchoolInfo(c *gin.Context) {
	var info models.SchoolInfo
	if err := h.db.Order("id desc").First(&info).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, info)
}

// CreateSchoolInfo adds a school profile row (PROTECTED - admin only)
func (h *SchoolHandler) CreateSchoolInfo(c *gin.Context) {
	var input struct {
		NamaSekolah string `json:"nama_sekolah" binding:"required"`
		Alamat      string `json:"alamat"`
		Telepon     string `json:"telepon"`
		Email       string `json:"email"`
		Website     string `json:"website"`
		Deskripsi   string `json:"deskripsi"`
		Jurusan     string `json:"jurusan"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nama_sekolah is required"})
		return
	}

	info := models.SchoolInfo{
		NamaSekolah: input.NamaSekolah,
		Alamat:      input.Alamat,
		Telepon:     input.Telepon,
		Email:       input.Email,
		Website:     input.Website,
		Deskripsi:   input.Deskripsi,
		Jurusan:     input.Jurusan,
	}

	if err := h.db.Create(&info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school info"})
		return
	}

	c.JSON(http.StatusCreated, info)
}

// UpdateSchoolInfo updates the latest school profile row (PROTECTED - admin only)
func (h *SchoolHandler) UpdateSchoolInfo(c *gin.Context) {
	var info models.SchoolInfo
	if err := h.db.Order("id desc").First(&info).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School info not found"})
		return
	}

	var input struct {
		NamaSekolah string `json:"nama_sekolah"`
		Alamat      string `json:"alamat"`
		Telepon     string `json:"telepon"`
		Email       string `json:"email"`
		Website     string `json:"website"`
		Deskripsi   string `json:"deskripsi"`
		Jurusan     string `json:"jurusan"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NamaSekolah != "" {
		info.NamaSekolah = input.NamaSekolah
	}
	if input.Alamat != "" {
		info.Alamat = input.Alamat
	}
	if input.Telepon != "" {
		info.Telepon = input.Telepon
	}
	if input.Email != "" {
		info.Email = input.Email
	}
	if input.Website != "" {
		info.Website = input.Website
	}
	if input.Deskripsi != "" {
		info.Deskripsi = input.Deskripsi
	}
	if input.Jurusan != "" {
		info.Jurusan = input.Jurusan
	}

	if err := h.db.Save(&info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school info"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// DeleteSchoolInfo removes the latest school profile row (PROTECTED - admin only)
func (h *SchoolHandler) DeleteSchoolInfo(c *gin.Context) {
	var info models.SchoolInfo
	if err := h.db.Order("id desc").First(&info).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data to delete"})
		return
	}

	if err := h.db.Delete(&info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "School info deleted successfully"})
}
