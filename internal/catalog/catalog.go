// Package catalog holds the fixed set of portfolio projects.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrNotFound is returned by Lookup for an unknown slug.
var ErrNotFound = errors.New("project not found")

// Links are a project's outbound links. "#" or empty means no link.
type Links struct {
	Live string `yaml:"live"`
	Code string `yaml:"github"`
}

// HasLive reports whether a live demo link should be shown.
func (l Links) HasLive() bool { return usable(l.Live) }

// HasCode reports whether a source link should be shown.
func (l Links) HasCode() bool { return usable(l.Code) }

func usable(link string) bool {
	link = strings.TrimSpace(link)
	return link != "" && link != "#"
}

// Project is one immutable catalog entry.
type Project struct {
	Slug       string
	Title      string
	Summary    string
	Paragraphs []string
	Image      string
	Tags       []string
	Links      Links
	order      int
}

type frontMatter struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"desc"`
	Image   string   `yaml:"image"`
	Tags    []string `yaml:"tags"`
	Order   int      `yaml:"order"`
	Links   `yaml:",inline"`
}

// Catalog is an ordered, read-only list of projects.
type Catalog struct {
	projects []Project
}

// New builds a catalog from projects in the given order. Slugs must be
// unique and non-empty.
func New(projects ...Project) (*Catalog, error) {
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("project %q has no slug", p.Title)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
	return &Catalog{projects: append([]Project(nil), projects...)}, nil
}

// Load reads every *.md file in dir. Each file carries YAML front matter for
// the record fields; the body holds the long description, one paragraph per
// blank-line separated block. Projects are ordered by their "order" field,
// then by file name.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	sort.Strings(matches)

	projects := make([]Project, 0, len(matches))
	for _, name := range matches {
		p, err := parseProject(fsys, name)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].order < projects[j].order
	})
	return New(projects...)
}

func parseProject(fsys fs.FS, name string) (Project, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Project{}, fmt.Errorf("read %s: %w", name, err)
	}
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Project{}, fmt.Errorf("parse front matter %s: %w", name, err)
	}
	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if strings.TrimSpace(fm.Title) == "" {
		return Project{}, fmt.Errorf("%s: title is required", name)
	}
	return Project{
		Slug:       slug,
		Title:      strings.TrimSpace(fm.Title),
		Summary:    strings.TrimSpace(fm.Summary),
		Paragraphs: splitParagraphs(string(body)),
		Image:      fm.Image,
		Tags:       fm.Tags,
		Links:      fm.Links,
		order:      fm.Order,
	}, nil
}

func splitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		lines := strings.Fields(block)
		if len(lines) == 0 {
			continue
		}
		out = append(out, strings.Join(lines, " "))
	}
	return out
}

// All returns the projects in catalog order.
func (c *Catalog) All() []Project {
	return append([]Project(nil), c.projects...)
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Lookup returns the project with the given slug, or ErrNotFound.
func (c *Catalog) Lookup(slug string) (Project, error) {
	for _, p := range c.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}
