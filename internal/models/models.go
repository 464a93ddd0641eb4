// Package models defines the data structures shared across the app.
//
// Everything here is request-scoped and transient; there is no
// persistence layer. The only thing that outlives a request is an
// Analysis parked in the in-memory result store so the report endpoint
// can regenerate the PDF without trusting client-supplied content.
package models

import (
	"html/template"
	"time"
)

// Analysis is one completed paper breakdown. Sections holds the raw
// (unformatted) text per canonical section name; formatting happens at
// render time.
type Analysis struct {
	Token     string            `json:"token"`
	Title     string            `json:"title"`
	Authors   string            `json:"authors,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Model     string            `json:"model"`
	Sections  map[string]string `json:"sections"`
	CreatedAt time.Time         `json:"created_at"`
}

// SectionView is one rendered section for the results template.
// Body is pre-formatted markup from the content formatter, so it is
// marked safe for the template engine.
type SectionView struct {
	Name string
	Body template.HTML
}

// HealthResponse is the JSON body for GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Model         string `json:"model"`
	StoredResults int    `json:"stored_results"`
}
