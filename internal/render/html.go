// Package render turns browser state into HTML pages and terminal text.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
)

//go:embed templates/*.html
var templateFS embed.FS

// LinkFunc maps a resource path to the URL a client should fetch.
type LinkFunc func(path string) string

// PlainLink leaves paths untouched.
func PlainLink(path string) string { return path }

// PageData feeds the browser page.
type PageData struct {
	Nav          []browser.NavEntry
	Panel        browser.Panel
	GlobalQuery  string
	SectionQuery string
	NameLabel    string
	AskName      bool
}

// FAQData feeds the FAQ page.
type FAQData struct {
	Query     string
	Rows      []browser.FAQRow
	Visible   int
	NameLabel string
}

// PreviewData feeds the preview fragment.
type PreviewData struct {
	Type  string
	Path  string
	Title string
}

// HTML renders the server pages.
type HTML struct {
	tmpl *template.Template
	link LinkFunc
}

// NewHTML parses the embedded templates. link resolves resource paths.
func NewHTML(link LinkFunc) (*HTML, error) {
	if link == nil {
		link = PlainLink
	}
	h := &HTML{link: link}
	// marked output comes from search.Highlight and is already escaped.
	funcs := template.FuncMap{
		"marked":    func(s string) template.HTML { return template.HTML(s) },
		"link":      func(p string) string { return h.link(p) },
		"actions":   func(r kb.Resource) []Action { return Actions(r, h.link) },
		"resmeta":   ResourceMeta,
		"navHref":   navHref,
		"noPreview": func() string { return NoPreview },
	}
	tmpl, err := template.New("kbase").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	h.tmpl = tmpl
	return h, nil
}

// Page renders the browser page.
func (h *HTML) Page(w io.Writer, d PageData) error {
	return h.tmpl.ExecuteTemplate(w, "page", d)
}

// FAQPage renders the FAQ accordion page.
func (h *HTML) FAQPage(w io.Writer, d FAQData) error {
	return h.tmpl.ExecuteTemplate(w, "faq", d)
}

// Preview renders the inline preview of one resource.
func (h *HTML) Preview(w io.Writer, d PreviewData) error {
	if d.Title == "" {
		d.Title = "Recurso"
	}
	return h.tmpl.ExecuteTemplate(w, "preview", d)
}

// LoadError renders the single fatal load alert.
func (h *HTML) LoadError(w io.Writer, err error) error {
	return h.tmpl.ExecuteTemplate(w, "loaderror", err.Error())
}

func navHref(section, q string) string {
	v := url.Values{}
	v.Set("section", section)
	if q != "" {
		v.Set("q", q)
	}
	return "/?" + v.Encode()
}
