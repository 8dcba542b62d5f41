package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"drportal/internal/auth"
	"drportal/internal/users/service"
	httputil "drportal/pkg/http"
	"drportal/pkg/logger"
	"drportal/pkg/model"
)

// UpsertResponse pairs the write result with a fresh access token so
// the client can authenticate immediately after sign-in.
type UpsertResponse struct {
	Result *model.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type UserHandler struct {
	service service.UserService
	auth    *auth.Middleware
	log     *logger.Logger

	promoteGated httprouter.Handle
}

func NewUserHandler(service service.UserService, authMw *auth.Middleware, log *logger.Logger) *UserHandler {
	h := &UserHandler{
		service: service,
		auth:    authMw,
		log:     log,
	}
	h.promoteGated = authMw.RequireAdmin(h.Promote)
	return h
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, users); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	isAdmin, err := h.service.AdminStatus(r.Context(), ps.ByName("email"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminStatus", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, AdminStatusResponse{Admin: isAdmin}); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminStatus", "error", err)
	}
}

func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Promote(r.Context(), ps.ByName("email"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Promote", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Promote", "error", err)
	}
}

func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Upsert", "error", writeErr)
		}
		return
	}

	result, token, err := h.service.UpsertProfile(r.Context(), ps.ByName("email"), &user)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upsert", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, UpsertResponse{Result: result, Token: token}); err != nil {
		h.log.Error("failed to write success response", "handler", "Upsert", "error", err)
	}
}

// routeUserPut dispatches under /user/. The router cannot hold both
// /user/:email and /user/admin/:email in one tree, so the split on the
// "admin" segment happens here.
func (h *UserHandler) routeUserPut(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	path := strings.TrimPrefix(ps.ByName("path"), "/")

	if email, ok := strings.CutPrefix(path, "admin/"); ok && email != "" {
		h.promoteGated(w, r, httprouter.Params{{Key: "email", Value: email}})
		return
	}

	if path == "" || strings.Contains(path, "/") {
		http.NotFound(w, r)
		return
	}

	h.Upsert(w, r, httprouter.Params{{Key: "email", Value: path}})
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/users", h.auth.RequireToken(h.GetAll))
	router.GET("/admin/:email", h.AdminStatus)
	router.PUT("/user/*path", h.routeUserPut)
}
