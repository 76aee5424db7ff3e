package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"payment-gateway/gateway/models"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is the HTTP API for the payment gateway service
type API struct {
	service *Service
	logger  *slog.Logger
}

func NewAPI(logger *slog.Logger, service *Service) *API {
	return &API{
		service: service,
		logger:  logger.With(slog.String("component", "api")),
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/merchants", func(r chi.Router) {
		r.Post("/", a.createMerchant)
		r.Get("/", a.getMerchants)
		r.Route("/{merchantID}", func(r chi.Router) {
			r.Post("/payments", a.createPayment)
			r.Get("/payments", a.getMerchantPayments)
			r.Get("/payments/{paymentID}", a.getPayment)
		})
	})
	// admin view across all merchants
	r.Get("/payments", a.getAllPayments)
}

func (a *API) createPayment(w http.ResponseWriter, r *http.Request) {
	request := &models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// the path owns the merchant identity
	request.MerchantID = chi.URLParam(r, "merchantID")

	if err := a.service.ProcessPayment(r.Context(), request); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}

		a.logger.Error("creating payment", slog.Any("err", err))
		http.Error(w, "Error creating payment.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.service.Payments(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

func (a *API) getMerchantPayments(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")

	payments, err := a.service.MerchantPayments(r.Context(), merchantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(payments) == 0 {
		http.Error(w, "No payments found.", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")
	paymentID := chi.URLParam(r, "paymentID")

	payment, err := a.service.Payment(r.Context(), merchantID, paymentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Payment not found.", http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (a *API) createMerchant(w http.ResponseWriter, r *http.Request) {
	create := models.CreateMerchant{}
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if create.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	merchant, err := a.service.CreateMerchant(r.Context(), create)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, merchant)
}

func (a *API) getMerchants(w http.ResponseWriter, r *http.Request) {
	merchants, err := a.service.Merchants(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, merchants)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
