//go:build js && wasm

// Command wasm drives the portfolio's interactive pieces in the browser:
// theme toggle, scroll tracking, section navigation and the typed tagline.
package main

import (
	"syscall/js"

	"github.com/Zachkp/folio/internal/browser"
	"github.com/Zachkp/folio/internal/nav"
	"github.com/Zachkp/folio/internal/scroll"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/typing"
)

func main() {
	var cleanups []func()

	themes := theme.NewController(theme.Tee(browser.LocalStorage{}, browser.CookieStore{}), browser.RootClass{})
	if btn := browser.ByID("theme-toggle"); !btn.IsNull() {
		setThemeLabel(btn, themes.Dark())
		cleanups = append(cleanups, browser.OnClick(btn, func(ev js.Value) {
			ev.Call("preventDefault")
			setThemeLabel(btn, themes.Toggle() == theme.Dark)
		}))
	}

	win := browser.Window{}
	navbar := browser.ByID("navbar")
	links := browser.QueryAll("a[data-section]")
	tracker := scroll.NewTracker(win, scroll.WithOnChange(func(s scroll.State) {
		if !navbar.IsNull() {
			navbar.Call("setAttribute", "data-scrolled", boolAttr(s.Scrolled))
		}
		for _, a := range links {
			a.Get("classList").Call("toggle", "active", a.Get("dataset").Get("section").String() == string(s.Active))
		}
	}))
	cleanups = append(cleanups, tracker.Attach(win))

	menuBtn := browser.ByID("menu-toggle")
	menu := nav.NewMenu(func(open bool) {
		if !menuBtn.IsNull() {
			menuBtn.Call("setAttribute", "aria-expanded", boolAttr(open))
		}
	})
	if !menuBtn.IsNull() {
		cleanups = append(cleanups, browser.OnClick(menuBtn, func(js.Value) { menu.Toggle() }))
	}
	navigator := nav.NewNavigator(win, menu)
	for _, a := range links {
		section := scroll.Section(a.Get("dataset").Get("section").String())
		cleanups = append(cleanups, browser.OnClick(a, func(ev js.Value) {
			ev.Call("preventDefault")
			navigator.ScrollTo(section)
		}))
	}

	if typed := browser.ByID("typed"); !typed.IsNull() {
		effect := typing.New(typed.Get("dataset").Get("text").String())
		typed.Set("textContent", "")
		cleanups = append(cleanups, effect.Start(typing.DefaultInterval, func(text string) {
			typed.Set("textContent", text)
		}))
	}

	// The page owns the module for its whole lifetime; pagehide tears it down.
	done := make(chan struct{})
	var unload js.Func
	unload = js.FuncOf(func(js.Value, []js.Value) any {
		js.Global().Get("window").Call("removeEventListener", "pagehide", unload)
		close(done)
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "pagehide", unload)
	<-done
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	unload.Release()
}

func setThemeLabel(btn js.Value, dark bool) {
	if dark {
		btn.Set("textContent", "Light mode")
	} else {
		btn.Set("textContent", "Dark mode")
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
