// Package model holds the view models rendered by the HTML templates.
package model

import (
	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/leads"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

// NavLinks are the navbar targets, each computed from the current state.
type NavLinks struct {
	Home        string
	Dressage    string
	Showjumping string
	Sell        string
}

// Layout is shared by every page.
type Layout struct {
	Title          string
	Screen         string // "home", "category", "sell", "detail"
	ActiveCategory catalog.Category
	Nav            NavLinks
	WhatsAppNumber string
	Year           int
	DarkNav        bool // every screen but home uses the dark navbar
}

// NewLayout builds the layout for state.
func NewLayout(state navigator.State, title, whatsApp string, year int) Layout {
	return Layout{
		Title:          title,
		Screen:         state.Screen().String(),
		ActiveCategory: state.ActiveCategory(),
		Nav: NavLinks{
			Home:        state.SelectCategory(catalog.CategoryAll).Path(),
			Dressage:    state.SelectCategory(catalog.CategoryDressage).Path(),
			Showjumping: state.SelectCategory(catalog.CategoryShowjumping).Path(),
			Sell:        state.OpenSell().Path(),
		},
		WhatsAppNumber: whatsApp,
		Year:           year,
		DarkNav:        state.Screen() != navigator.ScreenHome,
	}
}

// HorseCard is a horse with the link that opens its detail page.
type HorseCard struct {
	Horse catalog.Horse
	Link  string
}

// CategoryCard links to a category page from the landing page.
type CategoryCard struct {
	Category catalog.Category
	Label    string
	Count    int
	Link     string
}

// LevelCard is one level filter on a category page.
type LevelCard struct {
	Option catalog.LevelOption
	Count  int
	Link   string // toggles the filter
	Active bool
}

// HomeData holds data for the landing page.
type HomeData struct {
	Layout
	Categories []CategoryCard
	Showcase   []HorseCard
}

// CategoryData holds data for a category page.
type CategoryData struct {
	Layout
	Category   catalog.Category
	Label      string
	Total      int
	Levels     []LevelCard
	Level      catalog.Level
	LevelTitle string // empty when no level filter is active
	Horses     []HorseCard
	Back       string
}

// DetailData holds data for a horse detail page.
type DetailData struct {
	Layout
	Horse     catalog.Horse
	BirthYear int
	Related   []HorseCard
	Back      string
}

// SellData holds data for the sell-your-horse page.
type SellData struct {
	Layout
	Form        leads.Form
	Errors      leads.ValidationErrors
	Disciplines []leads.Discipline
	Submitted   bool
	Back        string
}

// NotFoundData holds data for the 404 page.
type NotFoundData struct {
	Layout
	Message string
}
