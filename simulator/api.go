package simulator

import (
	"encoding/json"
	"errors"
	"net/http"

	"payment-gateway/internal/expiry"

	"github.com/go-chi/chi/v5"
)

// API is the HTTP API for the simulated acquiring bank
type API struct {
	bank *Service
}

func NewAPI(bank *Service) *API {
	return &API{
		bank: bank,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payments", a.authorize)
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	request := Request{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if msg, ok := validateRequest(request); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	response, err := a.bank.Authorize(request)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		case errors.Is(err, ErrEmptyBody):
			// deliberately successful and bodiless
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func validateRequest(request Request) (string, bool) {
	switch {
	case request.CardNumber == "":
		return "card_number is required", false
	case request.ExpiryDate == "":
		return "expiry_date is required", false
	case !validExpiryDate(request.ExpiryDate):
		return "expiry_date must be MM/YYYY", false
	case request.Cvv == "":
		return "cvv is required", false
	case request.Currency == "":
		return "currency is required", false
	case request.Amount <= 0:
		return "amount must be greater than zero", false
	}

	return "", true
}

func validExpiryDate(s string) bool {
	_, _, err := expiry.Parse(s)
	return err == nil
}
