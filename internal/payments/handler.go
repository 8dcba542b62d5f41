package payments

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"drportal/internal/auth"
	httputil "drportal/pkg/http"
	"drportal/pkg/logger"
)

type IntentRequest struct {
	Price int `json:"price"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type Handler struct {
	intents IntentCreator
	auth    *auth.Middleware
	log     *logger.Logger
}

func NewHandler(intents IntentCreator, auth *auth.Middleware, log *logger.Logger) *Handler {
	return &Handler{
		intents: intents,
		auth:    auth,
		log:     log,
	}
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateIntent", "error", writeErr)
		}
		return
	}

	clientSecret, err := h.intents.CreateIntent(r.Context(), req.Price)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateIntent", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, IntentResponse{ClientSecret: clientSecret}); err != nil {
		h.log.Error("failed to write success response", "handler", "CreateIntent", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/create-payment-intent", h.auth.RequireToken(h.CreateIntent))
}
