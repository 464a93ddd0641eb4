// Package web provides the embedded HTML templates for the app.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the embedded templates as a filesystem rooted at
// the templates directory (files are accessed as "index.html", not
// "templates/index.html").
func Templates() (fs.FS, error) {
	return fs.Sub(templatesFS, "templates")
}
