package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ticketeiro/internal/auth"
	"ticketeiro/internal/logger"
	"ticketeiro/internal/models"
	"ticketeiro/internal/users"
	"ticketeiro/internal/utils"
)

type Handler struct {
	UserService *users.UserService
	Logger      *logger.Logger
}

func NewHandler(userService *users.UserService, log *logger.Logger) *Handler {
	return &Handler{UserService: userService, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/sign-up", h.SignUp)
		r.Post("/sign-in", h.SignIn)
		r.Post("/oauth-register", h.OAuthRegister)
	})
}

func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/me", h.Me)
}

// Me returns the profile of the session's user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, utils.ErrorResponse("Não autenticado", "missing session"))
		return
	}

	user, err := h.UserService.Profile(r.Context(), session.UserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Usuário não encontrado", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", user))
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload models.CredentialsSignUp
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Campos inválidos", err.Error()))
		return
	}

	result := h.UserService.SignUp(r.Context(), &payload)
	if !result.Success {
		if len(result.Fields) > 0 {
			writeJSON(w, http.StatusBadRequest, utils.ValidationErrorResponse(result.Message, result.Fields))
			return
		}
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse(result.Message, "sign-up failed"))
		return
	}
	writeJSON(w, http.StatusCreated, utils.SuccessResponse(result.Message, result))
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload models.CredentialsSignIn
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Campos inválidos", err.Error()))
		return
	}

	result := h.UserService.SignIn(r.Context(), &payload, r.URL.Query().Get("callbackUrl"))
	if !result.Success {
		writeJSON(w, http.StatusUnauthorized, utils.ErrorResponse(result.Message, "sign-in failed"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", result))
}

func (h *Handler) OAuthRegister(w http.ResponseWriter, r *http.Request) {
	var payload models.OAuthRegister
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Campos inválidos", err.Error()))
		return
	}

	result := h.UserService.OAuthRegister(r.Context(), &payload)
	if !result.Success {
		if len(result.Fields) > 0 {
			writeJSON(w, http.StatusBadRequest, utils.ValidationErrorResponse(result.Message, result.Fields))
			return
		}
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse(result.Message, "oauth register failed"))
		return
	}
	writeJSON(w, http.StatusCreated, utils.SuccessResponse(result.Message, result))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
