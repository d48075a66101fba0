// Package content embeds the portfolio's static biographical and project data.
package content

import "embed"

// FS holds profile.yaml and projects/*.md.
//
//go:embed profile.yaml projects/*.md
var FS embed.FS

const (
	ProfileFile = "profile.yaml"
	ProjectsDir = "projects"
)
