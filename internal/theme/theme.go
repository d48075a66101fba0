// Package theme owns the light/dark display preference.
//
// The controller reads the persisted value once, then mirrors every change to
// the store and to the document-level presentation flag. Storage failures are
// never reported: the theme simply stops persisting for that session.
package theme

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

// Preference is the display theme.
type Preference int

const (
	Light Preference = iota
	Dark
)

// String returns the persisted literal for p.
func (p Preference) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// Parse maps a persisted value to a Preference. Only the exact literal "dark"
// yields Dark.
func Parse(value string) Preference {
	if value == "dark" {
		return Dark
	}
	return Light
}

// Store is a fallible single-key string store (localStorage, a cookie, a
// local database file).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Applier applies the presentation flag to the root document.
type Applier interface {
	ApplyTheme(p Preference)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(Preference)

func (f ApplierFunc) ApplyTheme(p Preference) { f(p) }

// Controller is the only writer of the preference.
type Controller struct {
	store   Store
	applier Applier
	pref    Preference
}

// NewController reads the persisted preference from store and applies it.
// A nil store or applier is allowed.
func NewController(store Store, applier Applier) *Controller {
	c := &Controller{store: store, applier: applier}
	if store != nil {
		if v, err := store.Get(StorageKey); err == nil {
			c.pref = Parse(v)
		}
	}
	c.sync()
	return c
}

// Preference returns the current value.
func (c *Controller) Preference() Preference {
	return c.pref
}

// Dark reports whether the dark theme is active.
func (c *Controller) Dark() bool {
	return c.pref == Dark
}

// Toggle flips the preference, applies and persists it, and returns the new
// value.
func (c *Controller) Toggle() Preference {
	if c.pref == Dark {
		c.pref = Light
	} else {
		c.pref = Dark
	}
	c.sync()
	return c.pref
}

func (c *Controller) sync() {
	if c.applier != nil {
		c.applier.ApplyTheme(c.pref)
	}
	if c.store != nil {
		// A failed write leaves the in-memory value authoritative.
		_ = c.store.Set(StorageKey, c.pref.String())
	}
}
