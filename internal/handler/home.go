package handler

import (
	"net/http"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/config"
	"github.com/boutique-ecuestre/showroom/internal/model"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

// Home handles the landing page with the category entries and the showcase.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	state := navigator.Initial()

	categories := make([]model.CategoryCard, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		categories = append(categories, model.CategoryCard{
			Category: c,
			Label:    catalog.CategoryLabel(c),
			Count:    h.catalog.Count(c, catalog.LevelAll),
			Link:     state.SelectCategory(c).Path(),
		})
	}

	h.render(w, http.StatusOK, "home.html", model.HomeData{
		Layout:     h.layout(state, "Caballos de Deporte"),
		Categories: categories,
		Showcase:   h.cards(state, h.catalog.Showcase(config.ShowcaseLimit)),
	})
}
