//go:build js && wasm

// Package browser implements the collaborator interfaces over the DOM.
package browser

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/Zachkp/folio/internal/scroll"
	"github.com/Zachkp/folio/internal/theme"
)

// LocalStorage is a theme.Store over window.localStorage. Access can throw
// (private browsing, disabled storage); those exceptions become errors.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (value string, err error) {
	defer recoverJS(&err)
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return "", theme.ErrUnavailable
	}
	v := storage.Call("getItem", key)
	if v.IsNull() {
		return "", nil
	}
	return v.String(), nil
}

func (LocalStorage) Set(key, value string) (err error) {
	defer recoverJS(&err)
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return theme.ErrUnavailable
	}
	storage.Call("setItem", key, value)
	return nil
}

// CookieStore is a theme.Store over document.cookie, shared with the server.
type CookieStore struct{}

func (CookieStore) Get(key string) (value string, err error) {
	defer recoverJS(&err)
	raw := js.Global().Get("document").Get("cookie").String()
	for _, part := range strings.Split(raw, ";") {
		name, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && name == key {
			return v, nil
		}
	}
	return "", nil
}

func (CookieStore) Set(key, value string) (err error) {
	defer recoverJS(&err)
	js.Global().Get("document").Set("cookie",
		fmt.Sprintf("%s=%s; path=/; max-age=%d; samesite=lax", key, value, 365*24*60*60))
	return nil
}

// RootClass toggles the "dark" class on <html>.
type RootClass struct{}

func (RootClass) ApplyTheme(p theme.Preference) {
	classes := js.Global().Get("document").Get("documentElement").Get("classList")
	if p == theme.Dark {
		classes.Call("add", "dark")
	} else {
		classes.Call("remove", "dark")
	}
}

// Window is a scroll.Viewport, scroll.EventSource and nav.Scroller over the
// global window.
type Window struct{}

func (Window) ScrollY() float64 {
	return js.Global().Get("window").Get("scrollY").Float()
}

func (Window) Anchor(s scroll.Section) (scroll.Rect, bool) {
	el := byID(string(s))
	if el.IsNull() || el.IsUndefined() {
		return scroll.Rect{}, false
	}
	rect := el.Call("getBoundingClientRect")
	return scroll.Rect{Top: rect.Get("top").Float(), Bottom: rect.Get("bottom").Float()}, true
}

func (Window) OnScroll(fn func()) (remove func()) {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	win := js.Global().Get("window")
	win.Call("addEventListener", "scroll", cb)
	return func() {
		win.Call("removeEventListener", "scroll", cb)
		cb.Release()
	}
}

func (Window) ScrollIntoView(s scroll.Section) {
	el := byID(string(s))
	if el.IsNull() || el.IsUndefined() {
		return
	}
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	el.Call("scrollIntoView", opts)
}

// OnClick registers fn for click events on el and returns the remover.
func OnClick(el js.Value, fn func(event js.Value)) (remove func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	el.Call("addEventListener", "click", cb)
	return func() {
		el.Call("removeEventListener", "click", cb)
		cb.Release()
	}
}

// ByID returns the element with the given id, or null.
func ByID(id string) js.Value { return byID(id) }

// QueryAll returns the elements matching selector.
func QueryAll(selector string) []js.Value {
	list := js.Global().Get("document").Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func byID(id string) js.Value {
	return js.Global().Get("document").Call("getElementById", id)
}

// recoverJS turns a thrown JS exception into an error.
func recoverJS(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("%w: %s", theme.ErrUnavailable, jsErr.Error())
			return
		}
		*err = fmt.Errorf("%w: %v", theme.ErrUnavailable, r)
	}
}
