package handler

import (
	"log/slog"
	"net/http"

	"github.com/boutique-ecuestre/showroom/internal/leads"
	"github.com/boutique-ecuestre/showroom/internal/model"
	"github.com/boutique-ecuestre/showroom/internal/navigator"
)

const maxFormBytes = 64 << 10

func (h *Handler) sellData(form leads.Form, errs leads.ValidationErrors, submitted bool) model.SellData {
	state := navigator.Initial().OpenSell()
	return model.SellData{
		Layout:      h.layout(state, "Vender su Caballo"),
		Form:        form,
		Errors:      errs,
		Disciplines: leads.Disciplines,
		Submitted:   submitted,
		Back:        state.Back().Path(),
	}
}

// Sell handles the sell-your-horse form.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "sell.html", h.sellData(leads.Form{}, nil, false))
}

// SellSubmit handles the sell-your-horse form submission.
func (h *Handler) SellSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := leads.Form{
		FullName:       r.PostFormValue("full_name"),
		Phone:          r.PostFormValue("phone"),
		Location:       r.PostFormValue("location"),
		HorseName:      r.PostFormValue("horse_name"),
		HorseAge:       r.PostFormValue("horse_age"),
		Discipline:     r.PostFormValue("discipline"),
		EstimatedPrice: r.PostFormValue("estimated_price"),
		VideoURL:       r.PostFormValue("video_url"),
		Description:    r.PostFormValue("description"),
		AcceptedPolicy: r.PostFormValue("accepted_policy") == "yes",
	}

	lead, err := h.leads.Submit(r.Context(), form)
	if err != nil {
		if errs, ok := leads.IsValidationError(err); ok {
			h.render(w, http.StatusUnprocessableEntity, "sell.html", h.sellData(form, errs, false))
			return
		}
		slog.Error("failed to submit lead", "horse_name", form.HorseName, "error", err)
		http.Error(w, "Failed to submit request", http.StatusInternalServerError)
		return
	}

	slog.Info("lead submitted", "lead_id", lead.ID, "discipline", lead.Discipline)
	h.render(w, http.StatusOK, "sell.html", h.sellData(leads.Form{}, nil, true))
}
