package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/deeraj1899/EMS/internal/handler/http/response"
	"github.com/deeraj1899/EMS/internal/pkg/payment"
	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

type BillingHandler interface {
	CreateCheckoutSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
}

type BillingHandlerImpl struct {
	paymentService payment.Service
}

func NewBillingHandler(paymentService payment.Service) BillingHandler {
	return &BillingHandlerImpl{paymentService: paymentService}
}

type checkoutRequest struct {
	Plan  string `json:"plan"`
	Email string `json:"email"`
}

// CreateCheckoutSession implements BillingHandler.
func (h *BillingHandlerImpl) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Checkout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if validator.IsEmpty(req.Email) || !validator.IsValidEmail(req.Email) {
		response.BadRequest(w, "A valid email is required", nil)
		return
	}

	session, err := h.paymentService.CreateCheckoutSession(r.Context(), req.Plan, req.Email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, session)
}

// GetSession implements BillingHandler.
func (h *BillingHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	details, err := h.paymentService.GetSession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}
