// Package handlers contains the HTTP handlers for the app.
//
// Go Pattern: Handlers are methods on a Handler struct that holds
// shared dependencies: explicit dependency injection instead of
// globals, which makes testing easy (construct a Handler with a fake
// Analyzer and an in-memory store).
//
// Every failure below this layer is converted into a user-visible
// message on the form page; the pipeline never raises past a handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahidmustakim/hci-agent/internal/config"
	"github.com/sahidmustakim/hci-agent/internal/models"
	"github.com/sahidmustakim/hci-agent/internal/store"
)

// Version is reported by the health endpoint; overridden at build time.
var Version = "1.0.0"

// Analyzer is the slice of the Gemini client the handlers need.
// Accepting an interface keeps the network out of handler tests.
type Analyzer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Cfg    *config.Config
	Gemini Analyzer // nil when no API key is configured
	Store  *store.Store
}

// New creates a handler with all dependencies.
func New(cfg *config.Config, analyzer Analyzer, st *store.Store) *Handler {
	return &Handler{
		Cfg:    cfg,
		Gemini: analyzer,
		Store:  st,
	}
}

// HealthCheck returns the service status.
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:        "ok",
		Version:       Version,
		Model:         h.Cfg.GeminiModel,
		StoredResults: h.Store.Len(),
	})
}

// renderForm shows the upload form, optionally with an inline error and
// the previously submitted field values so the user doesn't retype them.
func (h *Handler) renderForm(c *gin.Context, status int, errMsg, title, authors, notes string) {
	c.HTML(status, "index.html", gin.H{
		"Error":   errMsg,
		"Title":   title,
		"Authors": authors,
		"Notes":   notes,
	})
}
