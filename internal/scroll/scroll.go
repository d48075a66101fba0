// Package scroll tracks which page section sits under the reading line.
package scroll

import "sync"

// Section identifies a page anchor.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Skills   Section = "skills"
	Projects Section = "projects"
	Contact  Section = "contact"
)

// Sections lists the navigable sections in declaration order.
var Sections = []Section{Home, About, Skills, Projects, Contact}

const (
	// ScrolledThreshold is the offset past which the nav bar turns opaque.
	ScrolledThreshold = 50.0
	// ReadingLine is the distance from the viewport top used for containment.
	ReadingLine = 100.0
)

// Rect is an anchor's bounding box relative to the viewport top.
type Rect struct {
	Top    float64
	Bottom float64
}

// Contains reports whether the reading line y falls inside r, edges included.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Viewport answers layout queries.
type Viewport interface {
	ScrollY() float64
	// Anchor reports the bounding box of the section's anchor, or false if the
	// anchor is not on the page.
	Anchor(s Section) (Rect, bool)
}

// EventSource delivers scroll events. The returned function removes the
// listener.
type EventSource interface {
	OnScroll(fn func()) (remove func())
}

// State is the navigation state derived from the viewport.
type State struct {
	Scrolled bool
	Active   Section
}

// Tracker is the single writer of State.
type Tracker struct {
	viewport Viewport
	sections []Section
	state    State
	onChange func(State)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSections overrides the ordered section list.
func WithSections(sections ...Section) Option {
	return func(t *Tracker) { t.sections = sections }
}

// WithOnChange registers a callback invoked after every update that changes
// the state.
func WithOnChange(fn func(State)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker returns a tracker whose active section starts at the first
// section.
func NewTracker(v Viewport, opts ...Option) *Tracker {
	t := &Tracker{viewport: v, sections: Sections}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.sections) > 0 {
		t.state.Active = t.sections[0]
	}
	return t
}

// State returns the last computed state.
func (t *Tracker) State() State {
	return t.state
}

// Update recomputes the state from the viewport.
func (t *Tracker) Update() State {
	prev := t.state
	t.state.Scrolled = t.viewport.ScrollY() > ScrolledThreshold
	if s, ok := ActiveSection(t.viewport, t.sections); ok {
		t.state.Active = s
	}
	if t.onChange != nil && t.state != prev {
		t.onChange(t.state)
	}
	return t.state
}

// Attach computes the state once and then on every scroll event from src.
// The returned detach function is safe to call more than once.
func (t *Tracker) Attach(src EventSource) (detach func()) {
	t.Update()
	remove := src.OnScroll(func() { t.Update() })
	var once sync.Once
	return func() { once.Do(remove) }
}

// ActiveSection returns the first section, in order, whose anchor contains
// the reading line.
func ActiveSection(v Viewport, sections []Section) (Section, bool) {
	for _, s := range sections {
		r, ok := v.Anchor(s)
		if ok && r.Contains(ReadingLine) {
			return s, true
		}
	}
	return "", false
}
