// analyze.go handles the upload form and the analysis pipeline.
//
// GET  / renders the upload form.
// POST / runs validate, temp file, extract, prompt, Gemini, split,
// store, render.
//
// Each request is an independent, stateless linear pipeline. The one
// slow step is the model call, bounded by the configured timeout.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahidmustakim/hci-agent/internal/models"
	"github.com/sahidmustakim/hci-agent/internal/services/extract"
	"github.com/sahidmustakim/hci-agent/internal/services/gemini"
	"github.com/sahidmustakim/hci-agent/internal/services/prompt"
	"github.com/sahidmustakim/hci-agent/internal/services/sections"
)

// Index renders the upload form.
// GET /
func (h *Handler) Index(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "", "", "", "")
}

// Analyze runs the full pipeline for one uploaded paper.
// POST /
//
// Multipart fields: pdf_file (required), title (required), authors,
// notes. All failures render the form page with an inline message.
func (h *Handler) Analyze(c *gin.Context) {
	// Cap the request body before touching the multipart form.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Cfg.MaxUploadBytes())

	title := strings.TrimSpace(c.PostForm("title"))
	authors := strings.TrimSpace(c.PostForm("authors"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	file, header, err := c.Request.FormFile("pdf_file")
	if err != nil {
		if isTooLarge(err) {
			h.renderForm(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Upload too large: the limit is %d MB.", h.Cfg.MaxUploadMB),
				title, authors, notes)
			return
		}
		h.renderForm(c, http.StatusBadRequest, "PDF file is required.", title, authors, notes)
		return
	}
	defer file.Close()

	if title == "" {
		h.renderForm(c, http.StatusBadRequest, "Title is required.", "", authors, notes)
		return
	}

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		h.renderForm(c, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type %q: only .pdf files are accepted.", ext),
			title, authors, notes)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			h.renderForm(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Upload too large: the limit is %d MB.", h.Cfg.MaxUploadMB),
				title, authors, notes)
			return
		}
		h.renderForm(c, http.StatusBadRequest, "Failed to read the uploaded file.", title, authors, notes)
		return
	}

	// PDF files start with "%PDF-".
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		h.renderForm(c, http.StatusBadRequest,
			"The uploaded file does not appear to be a valid PDF.", title, authors, notes)
		return
	}

	// The extractor wants a file on disk; the defer guarantees the temp
	// file goes away on every exit path.
	tmp, err := os.CreateTemp("", "hci-agent-*.pdf")
	if err != nil {
		log.Printf("❌ Failed to create temp file: %v", err)
		h.renderForm(c, http.StatusInternalServerError, "Could not store the upload. Try again.", title, authors, notes)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		log.Printf("❌ Failed to write temp file %s: write=%v close=%v", tmpPath, writeErr, closeErr)
		h.renderForm(c, http.StatusInternalServerError, "Could not store the upload. Try again.", title, authors, notes)
		return
	}

	// Extraction never fails the pipeline; a scanned or broken PDF
	// degrades to the sentinel and the model works from the metadata.
	extracted := extract.Text(tmpPath, h.Cfg.MaxPDFPages)

	if h.Gemini == nil {
		h.renderForm(c, http.StatusServiceUnavailable,
			"Analysis is not configured on this server. Set GEMINI_API_KEY and restart.", title, authors, notes)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(h.Cfg.ModelTimeout)*time.Second)
	defer cancel()

	p := prompt.Build(title, authors, extracted, notes)

	raw, err := h.Gemini.Generate(ctx, p)
	if err != nil {
		log.Printf("❌ Analysis failed for %q: %v", title, err)
		var upstream *gemini.UpstreamError
		if errors.As(err, &upstream) {
			h.renderForm(c, http.StatusBadGateway,
				"Analysis failed: "+upstream.Err.Error()+". Check the API key or try a different paper.",
				title, authors, notes)
			return
		}
		h.renderForm(c, http.StatusBadGateway, "Analysis failed: "+err.Error(), title, authors, notes)
		return
	}

	secs, err := sections.Split(raw)
	if err != nil {
		log.Printf("⚠️  Malformed model response for %q: %v", title, err)
		h.renderForm(c, http.StatusBadGateway,
			"The model reply did not follow the expected section layout. Try the analysis again.",
			title, authors, notes)
		return
	}

	analysis := &models.Analysis{
		Title:     title,
		Authors:   authors,
		Notes:     notes,
		Model:     h.Cfg.GeminiModel,
		Sections:  secs,
		CreatedAt: time.Now(),
	}
	token := h.Store.Put(analysis)

	log.Printf("✅ Analysis complete for %q (token=%s)", title, token)

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Title":    title,
		"Authors":  authors,
		"Token":    token,
		"Sections": sectionViews(secs),
	})
}

// isTooLarge reports whether err came from the MaxBytesReader body cap.
// The multipart reader doesn't always wrap the typed error, so the
// message is checked as a fallback.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// sectionViews formats each section and fixes the display order.
func sectionViews(secs map[string]string) []models.SectionView {
	views := make([]models.SectionView, 0, len(sections.Names))
	for _, name := range sections.Names {
		views = append(views, models.SectionView{
			Name: name,
			Body: template.HTML(sections.Format(secs[name])),
		})
	}
	return views
}
