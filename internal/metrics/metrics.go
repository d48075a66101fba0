// Package metrics counts page views without recording who made them.
package metrics

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// untracked are path prefixes that never count as page views.
var untracked = []string{"/static/", "/images/", "/pdf/", "/favicon", "/metrics", "/healthz"}

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry  *prometheus.Registry
	pageViews *prometheus.CounterVec
	themes    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	pageViews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Name:      "page_views_total",
		Help:      "Page views by route and status.",
	}, []string{"route", "status"})
	themes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Name:      "theme_toggles_total",
		Help:      "Theme toggles by resulting theme.",
	}, []string{"theme"})
	m := &Metrics{
		registry:  reg,
		pageViews: pageViews,
		themes:    themes,
	}
	reg.MustRegister(m.pageViews, m.themes, collectors.NewGoCollector())
	return m
}

// Middleware counts a page view per request. Static assets and requests that
// send Do Not Track are skipped.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.pageViews.WithLabelValues(route, statusClass(c.Writer.Status())).Inc()
	}
}

// ThemeToggled records a toggle to the given theme.
func (m *Metrics) ThemeToggled(theme string) {
	m.themes.WithLabelValues(theme).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
