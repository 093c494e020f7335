// Package web embeds the HTML templates served by the HTTP layer.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
	"hours": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates failed: %w", err)
	}
	return tmpl, nil
}
