package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/config"
	"github.com/boutique-ecuestre/showroom/internal/model"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

// Detail handles a horse page. ?from= names the category it was opened from,
// which decides where the back link leads.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	horse, err := h.catalog.Get(id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			slog.Error("failed to fetch horse", "horse_id", id, "error", err)
		}
		h.notFound(w, "El caballo solicitado no existe.")
		return
	}

	from := navigator.Initial().SelectCategory(catalog.ParseCategory(r.URL.Query().Get("from")))
	state, err := from.OpenDetail(&horse)
	if err != nil {
		slog.Error("failed to open horse detail", "horse_id", id, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	birthYear := 0
	if horse.Age > 0 {
		birthYear = h.now().Year() - horse.Age
	}

	h.render(w, http.StatusOK, "detail.html", model.DetailData{
		Layout:    h.layout(state, horse.Name),
		Horse:     horse,
		BirthYear: birthYear,
		Related:   h.cards(state, h.catalog.Related(horse, config.RelatedLimit)),
		Back:      state.Back().Path(),
	})
}
