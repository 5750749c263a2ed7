// Package navigator models which screen of the site is showing and what is
// selected on it. States are values; every transition returns a new State and
// leaves the receiver untouched.
package navigator

import (
	"errors"
	"net/url"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
)

// ErrNoSelection is returned when a detail screen is requested without a horse.
var ErrNoSelection = errors.New("detail screen requires a horse")

// Screen is the top-level view.
type Screen uint8

const (
	ScreenHome Screen = iota
	ScreenCategory
	ScreenSell
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenCategory:
		return "category"
	case ScreenSell:
		return "sell"
	case ScreenDetail:
		return "detail"
	}
	return "unknown"
}

// State is the navigation state. The zero value is the initial state.
//
// active is CategoryAll or a record category; it is never CategoryAll while
// screen is ScreenCategory. selected is non-nil exactly when screen is
// ScreenDetail.
type State struct {
	screen   Screen
	active   catalog.Category
	selected *catalog.Horse
}

// Initial returns the landing state: home, all categories.
func Initial() State {
	return State{screen: ScreenHome, active: catalog.CategoryAll}
}

// Screen returns the current screen.
func (s State) Screen() Screen {
	return s.screen
}

// ActiveCategory returns the category filter the user last picked.
func (s State) ActiveCategory() catalog.Category {
	if s.active == "" {
		return catalog.CategoryAll
	}
	return s.active
}

// Selected returns the horse shown on the detail screen.
func (s State) Selected() (catalog.Horse, bool) {
	if s.selected == nil {
		return catalog.Horse{}, false
	}
	return *s.selected, true
}

// SelectCategory switches to a category screen, or back home for CategoryAll.
// Invalid categories leave the state unchanged.
func (s State) SelectCategory(c catalog.Category) State {
	if c == catalog.CategoryAll {
		return Initial()
	}
	if !c.Valid() {
		return s
	}
	return State{screen: ScreenCategory, active: c}
}

// OpenSell switches to the sell-your-horse screen.
func (s State) OpenSell() State {
	return State{screen: ScreenSell, active: s.ActiveCategory()}
}

// OpenDetail shows h, keeping the active category so going back returns to it.
func (s State) OpenDetail(h *catalog.Horse) (State, error) {
	if h == nil {
		return s, ErrNoSelection
	}
	selected := *h
	return State{screen: ScreenDetail, active: s.ActiveCategory(), selected: &selected}, nil
}

// GoBackFromDetail returns to the category the detail was opened from, or home.
func (s State) GoBackFromDetail() State {
	if s.screen != ScreenDetail {
		return s
	}
	if active := s.ActiveCategory(); active != catalog.CategoryAll {
		return State{screen: ScreenCategory, active: active}
	}
	return Initial()
}

// GoBackFromCategory returns home.
func (s State) GoBackFromCategory() State {
	if s.screen != ScreenCategory {
		return s
	}
	return Initial()
}

// GoBackFromSell returns home.
func (s State) GoBackFromSell() State {
	if s.screen != ScreenSell {
		return s
	}
	return Initial()
}

// Back applies the back transition of the current screen. Home has none.
func (s State) Back() State {
	switch s.screen {
	case ScreenDetail:
		return s.GoBackFromDetail()
	case ScreenCategory:
		return s.GoBackFromCategory()
	case ScreenSell:
		return s.GoBackFromSell()
	}
	return s
}

// Path returns the URL path that renders s.
func (s State) Path() string {
	switch s.screen {
	case ScreenCategory:
		return "/category/" + url.PathEscape(string(s.active))
	case ScreenSell:
		return "/sell"
	case ScreenDetail:
		p := "/horses/" + url.PathEscape(s.selected.ID)
		if active := s.ActiveCategory(); active != catalog.CategoryAll {
			p += "?" + url.Values{"from": {string(active)}}.Encode()
		}
		return p
	}
	return "/"
}
