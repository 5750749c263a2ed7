package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/config"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

func toHorseResponse(h catalog.Horse) HorseResponse {
	link := ""
	if state, err := navigator.Initial().OpenDetail(&h); err == nil {
		link = state.Path()
	}
	return HorseResponse{
		ID:            h.ID,
		Name:          h.Name,
		Category:      string(h.Category),
		Level:         string(h.Level),
		Age:           h.Age,
		Gender:        string(h.Gender),
		Breed:         h.Breed,
		Country:       h.Country,
		Height:        h.Height,
		Coat:          h.Coat,
		Price:         h.Price,
		Elite:         h.Elite(),
		Description:   h.Description,
		Lineage:       h.Lineage,
		Image:         h.Image,
		Gallery:       h.Gallery,
		Video:         h.Video,
		VideoVertical: h.VideoVertical,
		Features:      h.Features,
		Link:          link,
	}
}

func toHorseResponses(horses []catalog.Horse) []HorseResponse {
	return lo.Map(horses, func(h catalog.Horse, _ int) HorseResponse {
		return toHorseResponse(h)
	})
}

// ListHorses handles GET /api/v1/horses.
//
//	@Summary		List horses
//	@Description	Returns the catalog filtered by category and level, in catalog order
//	@Tags			horses
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"	Enums(all, dressage, showjumping)	default(all)
//	@Param			level		query		string	false	"Level filter"		Enums(all, young, intermediate, advanced)	default(all)
//	@Success		200			{object}	HorseListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/v1/horses [get]
func (h *Handler) ListHorses(w http.ResponseWriter, r *http.Request) {
	category := catalog.ParseCategory(r.URL.Query().Get("category"))
	if category != catalog.CategoryAll && !category.Valid() {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid category: %s (valid: all, dressage, showjumping)", category))
		return
	}

	level := catalog.ParseLevel(r.URL.Query().Get("level"))
	if level != catalog.LevelAll && !level.Valid() {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid level: %s (valid: all, young, intermediate, advanced)", level))
		return
	}

	horses := h.catalog.Filter(category, level)
	h.writeJSON(w, http.StatusOK, HorseListResponse{
		Data:     toHorseResponses(horses),
		Total:    len(horses),
		Category: string(category),
		Level:    string(level),
	})
}

// getHorse loads the horse named by the id path parameter and writes an error response if it fails.
func (h *Handler) getHorse(w http.ResponseWriter, r *http.Request) (catalog.Horse, bool) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "horse ID is required")
		return catalog.Horse{}, false
	}

	horse, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "horse not found")
			return catalog.Horse{}, false
		}
		slog.Error("api: failed to get horse", "horse_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get horse")
		return catalog.Horse{}, false
	}
	return horse, true
}

// GetHorse handles GET /api/v1/horses/{id}.
//
//	@Summary		Get horse
//	@Description	Returns a single horse by ID
//	@Tags			horses
//	@Produce		json
//	@Param			id	path		string	true	"Horse ID"
//	@Success		200	{object}	HorseResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/horses/{id} [get]
func (h *Handler) GetHorse(w http.ResponseWriter, r *http.Request) {
	horse, ok := h.getHorse(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, toHorseResponse(horse))
}

// RelatedHorses handles GET /api/v1/horses/{id}/related.
//
//	@Summary		Related horses
//	@Description	Returns horses of the same category ranked by price proximity. Undisclosed prices compare as 100000.
//	@Tags			horses
//	@Produce		json
//	@Param			id		path		string	true	"Horse ID"
//	@Param			limit	query		int		false	"Number of results"	default(4)	maximum(20)
//	@Success		200		{array}		HorseResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/horses/{id}/related [get]
func (h *Handler) RelatedHorses(w http.ResponseWriter, r *http.Request) {
	horse, ok := h.getHorse(w, r)
	if !ok {
		return
	}
	limit := parseIntParam(r, "limit", config.RelatedLimit, config.MaxRelatedLimit)
	h.writeJSON(w, http.StatusOK, toHorseResponses(h.catalog.Related(horse, limit)))
}

// ListCategories handles GET /api/v1/categories.
//
//	@Summary		List categories
//	@Description	Returns each category with its levels and horse counts
//	@Tags			horses
//	@Produce		json
//	@Success		200	{array}	CategoryResponse
//	@Router			/api/v1/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := lo.Map(catalog.Categories, func(c catalog.Category, _ int) CategoryResponse {
		return CategoryResponse{
			ID:    string(c),
			Label: catalog.CategoryLabel(c),
			Count: h.catalog.Count(c, catalog.LevelAll),
			Levels: lo.Map(catalog.LevelOptions(c), func(opt catalog.LevelOption, _ int) LevelResponse {
				return LevelResponse{
					ID:    string(opt.Level),
					Title: opt.Title,
					Tag:   opt.Tag,
					Count: h.catalog.Count(c, opt.Level),
				}
			}),
		}
	})
	h.writeJSON(w, http.StatusOK, categories)
}
