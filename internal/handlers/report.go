// report.go regenerates the downloadable PDF report for a stored
// analysis.
//
// GET /download_pdf/:token
//
// The report is rebuilt from the server-side result store; section
// content never round-trips through the client.
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sahidmustakim/hci-agent/internal/services/report"
)

// DownloadPDF streams the regenerated report as a file attachment.
func (h *Handler) DownloadPDF(c *gin.Context) {
	token := c.Param("token")

	analysis, ok := h.Store.Get(token)
	if !ok {
		h.renderForm(c, http.StatusNotFound,
			"That analysis has expired or was never run. Upload the paper again to regenerate it.",
			"", "", "")
		return
	}

	pdfBytes, err := report.Build(analysis)
	if err != nil {
		log.Printf("❌ Report generation failed for token %s: %v", token, err)
		h.renderForm(c, http.StatusInternalServerError,
			"Could not generate the PDF report. Try again.", "", "", "")
		return
	}

	filename := sanitizeFilename(analysis.Title)
	if filename == "" {
		filename = "paper_summary"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// sanitizeFilename keeps only characters safe for a download filename:
// letters, digits, space, underscore, hyphen. Everything else,
// path separators included, is dropped.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())

	// Collapse runs of spaces left behind by dropped characters.
	for strings.Contains(out, "  ") {
		out = strings.ReplaceAll(out, "  ", " ")
	}

	if len(out) > 100 {
		out = out[:100]
	}
	return out
}
