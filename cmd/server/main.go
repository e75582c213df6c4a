package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediform/internal/api"
	"mediform/internal/artifact"
	"mediform/internal/config"
	"mediform/internal/extract"
	"mediform/internal/pipeline"
	"mediform/internal/sink"
	"mediform/internal/transcribe"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	sttBackend, err := transcribe.CreateBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to create transcription backend: %v", err)
	}
	extractBackend, err := extract.CreateBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to create extraction backend: %v", err)
	}

	store := artifact.NewStore(cfg.UploadDir)
	worker := transcribe.NewWorker(store, sttBackend, cfg.TranscribeTimeout)
	extractor := extract.NewExtractor(extractBackend, cfg.ExtractTimeout)
	sheet := sink.NewSheet(cfg.SheetPath)
	pipe := pipeline.New(worker, extractor, sheet)

	r := gin.Default()
	r.Use(corsMiddleware())
	api.RegisterRoutes(r, api.NewHandler(pipe))

	log.Printf("mediform gateway running on :%s (stt=%s, extract=%s, sheet=%s)",
		cfg.Port, sttBackend.Name(), extractBackend.Name(), cfg.SheetPath)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
