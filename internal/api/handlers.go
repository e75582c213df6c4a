package api

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediform/internal/httputil"
	"mediform/internal/pipeline"
	"mediform/internal/transcribe"
)

// Processor is what the handlers need from the pipeline
type Processor interface {
	Process(ctx context.Context, sub transcribe.Submission) (*pipeline.Outcome, error)
}

type Handler struct {
	processor Processor
}

func NewHandler(processor Processor) *Handler {
	return &Handler{processor: processor}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", home)
	r.GET("/health", healthCheck)
	r.POST("/process_audio", h.processAudio)
}

func home(c *gin.Context) {
	c.String(http.StatusOK, "mediform gateway is running")
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "mediform",
	})
}

// processAudio runs one uploaded audio file through the whole pipeline and
// returns the transcript together with the extracted intake record
func (h *Handler) processAudio(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "no file found in the request")
		return
	}

	src, err := file.Open()
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "failed to open uploaded file: "+err.Error())
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "failed to read uploaded file: "+err.Error())
		return
	}

	sub := transcribe.Submission{
		Filename:    file.Filename,
		Content:     content,
		ContentType: file.Header.Get("Content-Type"),
	}

	out, err := h.processor.Process(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[API] Processing failed for %s: %v", file.Filename, err)
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := gin.H{
		"transcription": out.Transcription,
		"form_data":     out.Record.Values(),
	}
	if !out.Persisted {
		// Processed but not persisted, the caller still gets the record
		resp["persisted"] = false
		resp["persist_error"] = out.PersistErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}
