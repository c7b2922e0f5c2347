// Package static provides embedded static files for the web server.
package static

import (
	"embed"
	"net/http"
)

//go:embed favicon.svg robots.txt
var files embed.FS

// Paths lists the URL paths served from the embedded files.
var Paths = []string{"/favicon.svg", "/robots.txt"}

// Handler returns an http.Handler that serves static files.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}
