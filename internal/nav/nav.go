// Package nav scrolls to page sections and owns the mobile menu state.
package nav

import "github.com/Zachkp/folio/internal/scroll"

// Scroller brings an anchor into view with smooth motion.
type Scroller interface {
	ScrollIntoView(s scroll.Section)
}

// Menu is the open/closed state of the mobile navigation overlay.
type Menu struct {
	open     bool
	onChange func(open bool)
}

// NewMenu returns a closed menu. onChange may be nil.
func NewMenu(onChange func(open bool)) *Menu {
	return &Menu{onChange: onChange}
}

func (m *Menu) IsOpen() bool { return m.open }

func (m *Menu) Toggle() { m.set(!m.open) }

func (m *Menu) Close() { m.set(false) }

func (m *Menu) set(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	if m.onChange != nil {
		m.onChange(open)
	}
}

// Navigator handles clicks on section links.
type Navigator struct {
	scroller Scroller
	menu     *Menu
}

func NewNavigator(s Scroller, m *Menu) *Navigator {
	return &Navigator{scroller: s, menu: m}
}

// ScrollTo scrolls to s and closes the menu.
func (n *Navigator) ScrollTo(s scroll.Section) {
	n.scroller.ScrollIntoView(s)
	if n.menu != nil {
		n.menu.Close()
	}
}
