package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ticketeiro/internal/auth"
	"ticketeiro/internal/events"
	"ticketeiro/internal/logger"
	"ticketeiro/internal/models"
	"ticketeiro/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

func NewHandler(eventService *events.EventService, log *logger.Logger) *Handler {
	return &Handler{EventService: eventService, Logger: log}
}

// RegisterRoutes mounts the event routes. Creation and the organizer
// listing require an authenticated session.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.ListEvents)
	r.Get("/events/{eventId}", h.GetEvent)
	r.Get("/categories", h.ListCategories)
	r.Get("/ticket-sectors", h.ListTicketSectors)
}

func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/events", h.CreateEvent)
	r.Get("/events/organizer/me", h.ListMyEvents)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft models.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Campos inválidos", err.Error()))
		return
	}

	session := auth.SessionFromContext(r.Context())
	result := h.EventService.CreateEvent(r.Context(), session, &draft)

	if result.Success {
		h.Logger.LogEvent("CREATE", result.EventID, "event created")
		writeJSON(w, http.StatusCreated, utils.SuccessResponse(result.Message, result))
		return
	}

	if len(result.Fields) > 0 {
		writeJSON(w, statusForResult(result.Kind), utils.ValidationErrorResponse(result.Message, result.Fields))
		return
	}
	writeJSON(w, statusForResult(result.Kind), utils.ErrorResponse(result.Message, string(result.Kind)))
}

func statusForResult(kind events.ResultKind) int {
	switch kind {
	case events.ResultNotAuthenticated:
		return http.StatusUnauthorized
	case events.ResultValidationFailed, events.ResultMissingRequiredField:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	event, err := h.EventService.GetEvent(r.Context(), eventID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Evento não encontrado", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", event))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.EventService.ListEvents(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Falha ao listar eventos", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", list))
}

func (h *Handler) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, utils.ErrorResponse("Não autenticado", "missing session"))
		return
	}

	list, err := h.EventService.ListEventsByOrganizer(r.Context(), session.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Falha ao listar eventos", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", list))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.EventService.ListCategories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Falha ao listar categorias", err.Error()))
		return
	}
	if len(list) == 0 {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Nenhuma categoria encontrada", "empty"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", list))
}

func (h *Handler) ListTicketSectors(w http.ResponseWriter, r *http.Request) {
	list, err := h.EventService.ListTicketSectors(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Falha ao listar setores", err.Error()))
		return
	}
	if len(list) == 0 {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Nenhum setor encontrado", "empty"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ok", list))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
