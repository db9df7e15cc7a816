package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sobat-stemanika/portal/backend/internal/database"
	"github.com/sobat-stemanika/portal/backend/internal/handlers"
	"github.com/sobat-stemanika/portal/backend/internal/middleware"
	"github.com/sobat-stemanika/portal/backend/internal/models"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Raw schema bootstrap carries the constraints AutoMigrate cannot express
	rawDB, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := rawDB.Initialize(); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	rawDB.Close()

	db, err := database.New()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	handler := handlers.NewHandler(db.GetDB())

	newServer := &Server{
		db:      db,
		handler: handler,
	}

	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Public reads
		api.GET("/vote/results", s.handler.Vote.Results)
		api.GET("/kandidat", s.handler.Kandidat.GetKandidat)
		api.GET("/eskul", s.handler.Eskul.GetEskul)
		api.GET("/school-info", s.handler.School.GetSchoolInfo)
		api.GET("/jadwal", s.handler.Jadwal.GetJadwal)
		api.GET("/ujian", s.handler.Ujian.GetUjian)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", s.handler.Auth.GetMe)

			// Voting
			protected.POST("/vote", middleware.RequireRole(models.RoleSiswa), s.handler.Vote.Cast)
			protected.GET("/vote/me", s.handler.Vote.MyVotes)
			protected.GET("/vote", middleware.RequireRole(models.RoleAdmin), s.handler.Vote.ListVotes)

			// Eskul choices
			protected.POST("/eskul/pilih", s.handler.Eskul.PilihEskul)
			protected.GET("/eskul/pilihan", s.handler.Eskul.MyPilihan)
			protected.DELETE("/eskul/pilihan/:id", s.handler.Eskul.DeletePilihan)

			// Admin-only writes
			admin := protected.Group("")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/kandidat", s.handler.Kandidat.CreateKandidat)
				admin.PUT("/kandidat/:id", s.handler.Kandidat.UpdateKandidat)
				admin.DELETE("/kandidat/:id", s.handler.Kandidat.DeleteKandidat)

				admin.POST("/eskul", s.handler.Eskul.CreateEskul)
				admin.PUT("/eskul/:id", s.handler.Eskul.UpdateEskul)
				admin.DELETE("/eskul/:id", s.handler.Eskul.DeleteEskul)

				admin.POST("/school-info", s.handler.School.CreateSchoolInfo)
				admin.PUT("/school-info", s.handler.School.UpdateSchoolInfo)
				admin.DELETE("/school-info", s.handler.School.DeleteSchoolInfo)

				admin.POST("/jadwal", s.handler.Jadwal.CreateJadwal)
				admin.PUT("/jadwal/:id", s.handler.Jadwal.UpdateJadwal)
				admin.DELETE("/jadwal/:id", s.handler.Jadwal.DeleteJadwal)

				admin.POST("/ujian", s.handler.Ujian.CreateUjian)
				admin.PUT("/ujian/:id", s.handler.Ujian.UpdateUjian)
				admin.DELETE("/ujian/:id", s.handler.Ujian.DeleteUjian)
			}
		}
	}

	return r
}
