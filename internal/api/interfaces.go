package api

import (
	"context"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/leads"
)

// horseCatalog defines the catalog access needed by the API.
type horseCatalog interface {
	Get(id string) (catalog.Horse, error)
	Count(category catalog.Category, level catalog.Level) int
	Filter(category catalog.Category, level catalog.Level) []catalog.Horse
	Related(reference catalog.Horse, limit int) []catalog.Horse
}

// leadSubmitter defines the lead intake needed by the API.
type leadSubmitter interface {
	Submit(ctx context.Context, form leads.Form) (*leads.Lead, error)
}
