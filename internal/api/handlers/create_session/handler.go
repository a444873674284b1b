package create_session

import (
	"net/http"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/api/middleware"
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

const msgInvalidRequestBody = "Corpo da requisição inválido."

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	// Тело опционально: пустой POST тоже создаёт сессию
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	clientID := middleware.ClientIDFromContext(r.Context())

	session, err := h.service.CreateSession(r.Context(), clientID, req.UnitExternalID)
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("POST /sessions - Failed to build calendar: session_id=%s, error=%v", session.ID, err)
		}
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, step=%s", session.ID, session.Step)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(session, grid))
}
