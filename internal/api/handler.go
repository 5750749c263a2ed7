package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	catalog    horseCatalog
	leads      leadSubmitter
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler.
func New(horses horseCatalog, submitter leadSubmitter) (*Handler, error) {
	if horses == nil {
		return nil, errors.New("horse catalog is required")
	}
	if submitter == nil {
		return nil, errors.New("lead service is required")
	}
	return &Handler{
		catalog: horses,
		leads:   submitter,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/horses", h.ListHorses)
	mux.HandleFunc("GET /api/v1/horses/{id}", h.GetHorse)
	mux.HandleFunc("GET /api/v1/horses/{id}/related", h.RelatedHorses)
	mux.HandleFunc("GET /api/v1/categories", h.ListCategories)
	mux.HandleFunc("POST /api/v1/leads", h.CreateLead)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

func parseIntParam(r *http.Request, name string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
