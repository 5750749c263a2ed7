package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/boutique-ecuestre/showroom/internal/leads"
)

const maxLeadBodyBytes = 64 << 10

// CreateLead handles POST /api/v1/leads.
//
//	@Summary		Submit a horse for sale
//	@Description	Validates and stores a sell-your-horse request
//	@Tags			leads
//	@Accept			json
//	@Produce		json
//	@Param			lead	body		LeadRequest	true	"Sell request"
//	@Success		201		{object}	LeadResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/leads [post]
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lead, err := h.leads.Submit(r.Context(), leads.Form(req))
	if err != nil {
		if fields, ok := leads.IsValidationError(err); ok {
			h.writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:  "validation failed",
				Code:   http.StatusUnprocessableEntity,
				Fields: fields,
			})
			return
		}
		slog.Error("api: failed to submit lead", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to submit lead")
		return
	}

	h.writeJSON(w, http.StatusCreated, LeadResponse{
		ID:        lead.ID.String(),
		CreatedAt: lead.CreatedAt,
	})
}
