// Package report renders a stored analysis into a downloadable PDF
// document using go-pdf/fpdf.
package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sahidmustakim/hci-agent/internal/models"
	"github.com/sahidmustakim/hci-agent/internal/services/sections"
)

// tagRe strips any markup tags out of section content before it is
// written as plain text.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// Build produces the PDF report bytes: title, generation timestamp,
// optional authors line, then every canonical section in order.
func Build(a *models.Analysis) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; tr maps what it can and substitutes the rest.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, tr(a.Title), "", "L", false)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr("Generated "+a.CreatedAt.Format("2006-01-02 15:04 MST")), "", "L", false)
	if a.Authors != "" {
		pdf.MultiCell(0, 6, tr("Authors: "+a.Authors), "", "L", false)
	}
	pdf.Ln(4)

	for _, name := range sections.Names {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, tr(name), "", "L", false)

		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(plainText(a.Sections[name])), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// plainText re-strips markup tags and emphasis glyphs so only plain
// text ends up in the document.
func plainText(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return "Not reported."
	}
	return s
}
