package handler

import (
	"net/http"
	"net/url"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/model"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

// Category handles a discipline page, optionally filtered by ?level=.
func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("category")
	category := catalog.ParseCategory(raw)

	state := navigator.Initial().SelectCategory(category)
	if state.Screen() != navigator.ScreenCategory {
		if category == catalog.CategoryAll {
			http.Redirect(w, r, state.Path(), http.StatusMovedPermanently)
			return
		}
		h.notFound(w, "La disciplina solicitada no existe.")
		return
	}

	// Spanish slugs redirect to the canonical path.
	if raw != string(category) {
		target := state.Path()
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	level := catalog.ParseLevel(r.URL.Query().Get("level"))

	options := catalog.LevelOptions(category)
	levels := make([]model.LevelCard, 0, len(options))
	levelTitle := ""
	for _, opt := range options {
		active := opt.Level == level
		link := state.Path()
		if active {
			levelTitle = opt.Title
		} else {
			link += "?" + url.Values{"level": {string(opt.Level)}}.Encode()
		}
		levels = append(levels, model.LevelCard{
			Option: opt,
			Count:  h.catalog.Count(category, opt.Level),
			Link:   link,
			Active: active,
		})
	}

	horses := h.catalog.Filter(category, level)
	label := catalog.CategoryLabel(category)

	h.render(w, http.StatusOK, "category.html", model.CategoryData{
		Layout:     h.layout(state, label),
		Category:   category,
		Label:      label,
		Total:      h.catalog.Count(category, catalog.LevelAll),
		Levels:     levels,
		Level:      level,
		LevelTitle: levelTitle,
		Horses:     h.cards(state, horses),
		Back:       state.Back().Path(),
	})
}
