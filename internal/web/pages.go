package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/scroll"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	homeTemplate     = "index.html"
	projectTemplate  = "project.html"
	notFoundTemplate = "not-found.html"
)

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	t, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Page carries the fields every template needs.
type Page struct {
	Title   string
	Dark    bool
	Path    string
	Profile *profile.Profile
}

type NavItem struct {
	Section scroll.Section
	Label   string
	Active  bool
}

type HomePage struct {
	Page
	Nav      []NavItem
	Projects []catalog.Project
}

type ProjectPage struct {
	Page
	Project catalog.Project
	Body    []template.HTML
}

type NotFoundPage struct {
	Page
	Slug string
}

// Site builds page data from the profile and catalog.
type Site struct {
	Profile *profile.Profile
	Catalog *catalog.Catalog
	md      goldmark.Markdown
}

func NewSite(p *profile.Profile, c *catalog.Catalog) *Site {
	return &Site{
		Profile: p,
		Catalog: c,
		md:      goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Typographer)),
	}
}

// Home returns the listing page. The first section is marked active until
// the browser's scroll tracker takes over.
func (s *Site) Home(dark bool) HomePage {
	// Casers keep state and are not safe for concurrent use.
	title := cases.Title(language.English)
	nav := make([]NavItem, len(scroll.Sections))
	for i, sec := range scroll.Sections {
		nav[i] = NavItem{Section: sec, Label: title.String(string(sec)), Active: i == 0}
	}
	return HomePage{
		Page:     Page{Title: s.Profile.Name + " | Portfolio", Dark: dark, Path: "/", Profile: s.Profile},
		Nav:      nav,
		Projects: s.Catalog.All(),
	}
}

// Project returns the detail page for slug, or an error wrapping
// catalog.ErrNotFound.
func (s *Site) Project(slug string, dark bool) (ProjectPage, error) {
	p, err := s.Catalog.Lookup(slug)
	if err != nil {
		return ProjectPage{}, err
	}
	body := make([]template.HTML, 0, len(p.Paragraphs))
	for _, para := range p.Paragraphs {
		var buf bytes.Buffer
		if err := s.md.Convert([]byte(para), &buf); err != nil {
			return ProjectPage{}, fmt.Errorf("render %s: %w", slug, err)
		}
		// goldmark escapes raw HTML unless WithUnsafe is set.
		body = append(body, template.HTML(buf.String()))
	}
	return ProjectPage{
		Page:    Page{Title: p.Title + " | " + s.Profile.Name, Dark: dark, Path: "/projects/" + p.Slug, Profile: s.Profile},
		Project: p,
		Body:    body,
	}, nil
}

func (s *Site) NotFound(slug string, dark bool) NotFoundPage {
	return NotFoundPage{
		Page: Page{Title: "Project not found", Dark: dark, Path: "/", Profile: s.Profile},
		Slug: slug,
	}
}

// Render executes the named template into w.
func Render(t *template.Template, w io.Writer, name string, data any) error {
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
