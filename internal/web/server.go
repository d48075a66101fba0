// Package web serves the portfolio over HTTP with gin.
package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/theme"
)

// themeCookieMaxAge keeps the preference for a year.
const themeCookieMaxAge = 365 * 24 * 60 * 60

// Server wires the site into a gin engine.
type Server struct {
	cfg       config.Config
	site      *Site
	templates *template.Template
	metrics   *metrics.Metrics
}

// NewServer parses the templates and returns a server. m may be nil to
// disable metrics.
func NewServer(cfg config.Config, site *Site, m *metrics.Metrics) (*Server, error) {
	t, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, site: site, templates: t, metrics: m}, nil
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(s.templates)

	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
		r.GET("/metrics", s.metrics.Handler())
	}

	r.Static("/static", s.cfg.StaticDir)
	r.Static("/images", s.cfg.ImagesDir)
	r.Static("/pdf", s.cfg.PDFDir)

	r.GET("/", s.home)
	r.GET("/projects/:slug", s.project)
	r.POST("/theme", s.toggleTheme)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "projects": s.site.Catalog.Len()})
	})
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, notFoundTemplate, s.site.NotFound("", s.themeFor(c).Dark()))
	})
	return r
}

// Run listens on the configured port.
func (s *Server) Run() error {
	log.Printf("Serving %d projects on %s", s.site.Catalog.Len(), s.cfg.Addr())
	return s.Router().Run(s.cfg.Addr())
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, homeTemplate, s.site.Home(s.themeFor(c).Dark()))
}

func (s *Server) project(c *gin.Context) {
	slug := c.Param("slug")
	dark := s.themeFor(c).Dark()

	page, err := s.site.Project(slug, dark)
	if errors.Is(err, catalog.ErrNotFound) {
		c.HTML(http.StatusNotFound, notFoundTemplate, s.site.NotFound(slug, dark))
		return
	}
	if err != nil {
		log.Printf("Error rendering project %s: %v", slug, err)
		c.String(http.StatusInternalServerError, "Failed to render project")
		return
	}
	c.HTML(http.StatusOK, projectTemplate, page)
}

// toggleTheme is the no-script fallback for the theme button.
func (s *Server) toggleTheme(c *gin.Context) {
	p := s.themeFor(c).Toggle()
	if s.metrics != nil {
		s.metrics.ThemeToggled(p.String())
	}
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// themeFor builds a request-scoped controller over the theme cookie.
func (s *Server) themeFor(c *gin.Context) *theme.Controller {
	return theme.NewController(&cookieStore{c: c, secure: s.cfg.CookieSecure}, nil)
}

// safeReturn only allows local absolute paths. Control characters are
// rejected because browsers strip tabs and newlines, which would turn
// "/\t/host" into a scheme-relative URL.
func safeReturn(path string) string {
	for i := 0; i < len(path); i++ {
		if path[i] < 0x20 || path[i] == 0x7f {
			return "/"
		}
	}
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return path
}

// cookieStore is a theme.Store over the request's cookies. The cookie is not
// HttpOnly so the browser client can keep it in sync with localStorage.
// Writes that match the value the browser already holds (current) are
// skipped.
type cookieStore struct {
	c       *gin.Context
	secure  bool
	current string
	known   bool
}

func (s *cookieStore) Get(key string) (string, error) {
	v, err := s.c.Cookie(key)
	if err == nil {
		s.current, s.known = v, true
	}
	return v, err
}

func (s *cookieStore) Set(key, value string) error {
	if s.known && s.current == value {
		return nil
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.secure, false)
	s.current, s.known = value, true
	return nil
}
