package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"drportal/internal/auth"
	"drportal/internal/bookings/service"
	httputil "drportal/pkg/http"
	"drportal/pkg/logger"
	"drportal/pkg/model"
)

// BookingResponse is the booking-create contract: success with an
// insert result, or success false plus the conflicting booking.
type BookingResponse struct {
	Success bool                `json:"success"`
	Result  *model.InsertResult `json:"result,omitempty"`
	Booking *model.Booking      `json:"booking,omitempty"`
}

type BookingHandler struct {
	service service.BookingService
	auth    *auth.Middleware
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, auth *auth.Middleware, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	created, isNew, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	// A duplicate is not an error status; the client shows the
	// existing booking instead.
	if !isNew {
		if writeErr := httputil.WriteSuccess(w, BookingResponse{
			Success: false,
			Booking: created,
		}); writeErr != nil {
			h.log.Error("failed to write success response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, BookingResponse{
		Success: true,
		Result:  &model.InsertResult{InsertedID: created.ID},
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) GetByPatient(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	patientEmail := r.URL.Query().Get("patientEmail")
	requester := auth.PrincipalEmail(r.Context())

	bookings, err := h.service.GetByPatient(r.Context(), requester, patientEmail)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByPatient", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByPatient", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

// ConfirmPayment records a payment against a booking and marks it paid.
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payment model.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "ConfirmPayment", "error", writeErr)
		}
		return
	}

	result, err := h.service.ConfirmPayment(r.Context(), ps.ByName("id"), &payment)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ConfirmPayment", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "ConfirmPayment", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/booking", h.Create)
	router.GET("/booking", h.auth.RequireToken(h.GetByPatient))
	router.GET("/booking/:id", h.auth.RequireToken(h.GetByID))
	router.PATCH("/booking/:id", h.auth.RequireToken(h.ConfirmPayment))
}
