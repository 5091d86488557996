// Package web holds the page templates and static assets, embedded so the
// binary runs from any working directory.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

func TemplatesFS() (fs.FS, error) {
	return fs.Sub(files, "templates")
}

func StaticFS() (fs.FS, error) {
	return fs.Sub(files, "static")
}
