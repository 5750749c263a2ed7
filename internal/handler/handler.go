package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/leads"
	"github.com/boutique-ecuestre/showroom/internal/model"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

// HorseCatalog is the read-only catalog view needed by the pages.
type HorseCatalog interface {
	Get(id string) (catalog.Horse, error)
	Showcase(limit int) []catalog.Horse
	Count(category catalog.Category, level catalog.Level) int
	Filter(category catalog.Category, level catalog.Level) []catalog.Horse
	Related(reference catalog.Horse, limit int) []catalog.Horse
}

// LeadSubmitter accepts sell-your-horse requests.
type LeadSubmitter interface {
	Submit(ctx context.Context, form leads.Form) (*leads.Lead, error)
}

// TemplateRenderer renders a named page.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	catalog  HorseCatalog
	leads    LeadSubmitter
	tmpl     TemplateRenderer
	whatsApp string
	now      func() time.Time
}

// New creates a new Handler with the given dependencies.
func New(horses HorseCatalog, submitter LeadSubmitter, tmpl TemplateRenderer, whatsApp string) (*Handler, error) {
	if horses == nil {
		return nil, errors.New("horse catalog is required")
	}
	if submitter == nil {
		return nil, errors.New("lead service is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}
	return &Handler{
		catalog:  horses,
		leads:    submitter,
		tmpl:     tmpl,
		whatsApp: whatsApp,
		now:      time.Now,
	}, nil
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /category/{category}", h.Category)
	mux.HandleFunc("GET /horses/{id}", h.Detail)
	mux.HandleFunc("GET /sell", h.Sell)
	mux.HandleFunc("POST /sell", h.SellSubmit)
	mux.HandleFunc("/", h.NotFound)
}

func (h *Handler) layout(state navigator.State, title string) model.Layout {
	return model.NewLayout(state, title, h.whatsApp, h.now().Year())
}

// render executes the page into a buffer first so that template errors never
// produce a partial response.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "template", name, "error", err)
	}
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, "La página solicitada no existe.")
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	h.render(w, http.StatusNotFound, "notfound.html", model.NotFoundData{
		Layout:  h.layout(navigator.Initial(), "No encontrado"),
		Message: message,
	})
}

func (h *Handler) cards(from navigator.State, horses []catalog.Horse) []model.HorseCard {
	cards := make([]model.HorseCard, 0, len(horses))
	for i := range horses {
		next, err := from.OpenDetail(&horses[i])
		if err != nil {
			continue
		}
		cards = append(cards, model.HorseCard{Horse: horses[i], Link: next.Path()})
	}
	return cards
}
