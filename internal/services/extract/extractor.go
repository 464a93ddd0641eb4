// Package extract pulls plain text from the leading pages of an
// uploaded PDF.
//
// We use the ledongthuc/pdf library, a pure Go implementation with no CGO
// or external tools, so deployment stays a single binary. Academic PDFs
// put the title, authors, and abstract up front, so a handful of pages
// is enough context for the model.
package extract

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Sentinel replaces the extracted text whenever extraction fails or
// comes back blank. The pipeline keeps going with this placeholder;
// a scanned or corrupt PDF must never abort an analysis.
const Sentinel = "⚠ No text extracted from PDF"

// DefaultMaxPages bounds how many leading pages are read.
const DefaultMaxPages = 5

// Text extracts and concatenates the text of pages 1..maxPages
// (stopping early on shorter documents). It never fails: open errors,
// parse panics, per-page failures, and blank results all degrade to
// the sentinel.
func Text(path string, maxPages int) string {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	text, err := readPages(path, maxPages)
	if err != nil {
		log.Printf("⚠️  PDF extraction failed for %s: %v", path, err)
		return Sentinel
	}
	if strings.TrimSpace(text) == "" {
		return Sentinel
	}
	return text
}

// readPages does the actual library calls. The pdf library panics on
// some malformed documents; recover turns that into an error.
func readPages(path string, maxPages int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i := 1; i <= pageCount && i <= maxPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages are images only; skip, don't fail the document.
			continue
		}

		sb.WriteString(strings.TrimSpace(pageText))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
