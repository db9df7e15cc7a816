package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

type JadwalHandler struct {
	db *gorm.DB
}

func NewJadwalHandler(db *gorm.DB) *JadwalHandler {
	return &JadwalHandler{db: db}
}

// GetJadwal returns schedules, optionally filtered by kelas and jurusan
func (h *JadwalHandler) GetJadwal(c *gin.Context) {
	var jadwal []models.Jadwal

	query := h.db.Order("hari asc, jam_mulai asc")
	if kelas := c.Query("kelas"); kelas != "" {
		query = query.Where("kelas = ?", kelas)
	}
	if jurusan := c.Query("jurusan"); jurusan != "" {
		query = query.Where("jurusan = ?", jurusan)
	}

	if err := query.Find(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jadwal"})
		return
	}

	if jadwal == nil {
		jadwal = []models.Jadwal{}
	}

	c.JSON(http.StatusOK, jadwal)
}

// CreateJadwal adds a schedule entry (PROTECTED - admin only)
func (h *JadwalHandler) CreateJadwal(c *gin.Context) {
	var input struct {
		Hari          string `json:"hari" binding:"required"`
		JamMulai      string `json:"jam_mulai" binding:"required"`
		JamSelesai    string `json:"jam_selesai" binding:"required"`
		MataPelajaran string `json:"mata_pelajaran" binding:"required"`
		Guru          string `json:"guru"`
		Kelas         string `json:"kelas"`
		Jurusan       string `json:"jurusan"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jadwal := models.Jadwal{
		Hari:          input.Hari,
		JamMulai:      input.JamMulai,
		JamSelesai:    input.JamSelesai,
		MataPelajaran: input.MataPelajaran,
		Guru:          input.Guru,
		Kelas:         input.Kelas,
		Jurusan:       input.Jurusan,
	}

	if err := h.db.Create(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create jadwal"})
		return
	}

	c.JSON(http.StatusCreated, jadwal)
}

// UpdateJadwal updates a schedule entry (PROTECTED - admin only)
func (h *JadwalHandler) UpdateJadwal(c *gin.Context) {
	jadwalID := c.Param("id")

	var jadwal models.Jadwal
	if err := h.db.First(&jadwal, jadwalID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal not found"})
		return
	}

	var input struct {
		Hari          string `json:"hari"`
		JamMulai      string `json:"jam_mulai"`
		JamSelesai    string `json:"jam_selesai"`
		MataPelajaran string `json:"mata_pelajaran"`
		Guru          string `json:"guru"`
		Kelas         string `json:"kelas"`
		Jurusan       string `json:"jurusan"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Hari != "" {
		jadwal.Hari = input.Hari
	}
	if input.JamMulai != "" {
		jadwal.JamMulai = input.JamMulai
	}
	if input.JamSelesai != "" {
		jadwal.JamSelesai = input.JamSelesai
	}
	if input.MataPelajaran != "" {
		jadwal.MataPelajaran = input.MataPelajaran
	}
	if input.Guru != "" {
		jadwal.Guru = input.Guru
	}
	if input.Kelas != "" {
		jadwal.Kelas = input.Kelas
	}
	if input.Jurusan != "" {
		jadwal.Jurusan = input.Jurusan
	}

	if err := h.db.Save(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update jadwal"})
		return
	}

	c.JSON(http.StatusOK, jadwal)
}

// DeleteJadwal removes a schedule entry (PROTECTED - admin only)
func (h *JadwalHandler) DeleteJadwal(c *gin.Context) {
	jadwalID := c.Param("id")

	if err := h.db.Delete(&models.Jadwal{}, jadwalID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete jadwal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jadwal deleted successfully"})
}
