package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/sahidmustakim/hci-agent/internal/models"
	"github.com/sahidmustakim/hci-agent/internal/services/sections"
)

func TestBuildProducesPDF(t *testing.T) {
	secs := make(map[string]string, len(sections.Names))
	for _, name := range sections.Names {
		secs[name] = "Some content for " + name + "."
	}

	a := &models.Analysis{
		Title:     "A Study of Direct Manipulation",
		Authors:   "Shneiderman, 1983",
		Model:     "gemini-2.5-flash",
		Sections:  secs,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	out, err := Build(a)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("report output does not start with the PDF magic bytes")
	}
	if len(out) < 1000 {
		t.Errorf("report suspiciously small: %d bytes", len(out))
	}
}

func TestBuildHandlesMissingSections(t *testing.T) {
	a := &models.Analysis{
		Title:     "Sparse Result",
		Sections:  map[string]string{"TL;DR": "Short."},
		CreatedAt: time.Now(),
	}

	out, err := Build(a)
	if err != nil {
		t.Fatalf("Build returned error on sparse sections: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("report output does not start with the PDF magic bytes")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markup tags stripped",
			input:    "<p>Hello</p>\n<li>item</li>",
			expected: "Hello\nitem",
		},
		{
			name:     "asterisks stripped",
			input:    "**bold** text",
			expected: "bold text",
		},
		{
			name:     "empty becomes placeholder",
			input:    "",
			expected: "Not reported.",
		},
		{
			name:     "tags-only becomes placeholder",
			input:    "<br>",
			expected: "Not reported.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plainText(tt.input); got != tt.expected {
				t.Errorf("plainText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
