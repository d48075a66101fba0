// Package profile loads the biographical content shown on the listing page.
package profile

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type SkillGroup struct {
	Name  string   `yaml:"name"`
	Icon  string   `yaml:"icon"`
	Items []string `yaml:"items"`
}

type Experience struct {
	Title   string `yaml:"title"`
	Role    string `yaml:"role"`
	Period  string `yaml:"period"`
	Place   string `yaml:"place"`
	Summary string `yaml:"summary"`
}

type Education struct {
	School  string   `yaml:"school"`
	Program string   `yaml:"program"`
	Address string   `yaml:"address"`
	Period  string   `yaml:"period"`
	Notes   []string `yaml:"notes"`
}

type Contact struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the site owner's static biography.
type Profile struct {
	Name       string       `yaml:"name"`
	Role       string       `yaml:"role"`
	Tagline    string       `yaml:"tagline"`
	Photo      string       `yaml:"photo"`
	Resume     string       `yaml:"resume"`
	Bio        string       `yaml:"bio"`
	WhatIDo    []string     `yaml:"what_i_do"`
	Strengths  []string     `yaml:"strengths"`
	Skills     []SkillGroup `yaml:"skills"`
	Experience []Experience `yaml:"experience"`
	Education  []Education  `yaml:"education"`
	Contact    Contact      `yaml:"contact"`
	Links      []Link       `yaml:"links"`
}

// Load decodes the profile at name in fsys.
func Load(fsys fs.FS, name string) (*Profile, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile %s: name is required", name)
	}
	return &p, nil
}

// Link returns the URL of the link with the given label.
func (p *Profile) Link(label string) string {
	for _, l := range p.Links {
		if l.Label == label {
			return l.URL
		}
	}
	return ""
}
