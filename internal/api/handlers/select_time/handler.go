package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgSessionNotFound    = "Sessão não encontrada ou expirada."
	msgSessionTerminal    = "Agendamento já concluído. Inicie uma nova sessão."
	msgWrongStep          = "Operação não permitida nesta etapa."
	msgTimeNotAvailable   = "Horário não disponível. Escolha outro horário."
)

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

// Handle PUT /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectTime(r.Context(), sessionID, req.Hour)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrTimeNotAvailable):
			h.logger.Warn("PUT /sessions/{id}/time - Time not available: session_id=%s, hour=%q", sessionID, req.Hour)
			handlers.RespondConflict(w, msgTimeNotAvailable)

		default:
			h.logger.Error("PUT /sessions/{id}/time - Failed: session_id=%s, hour=%q, error=%v",
				sessionID, req.Hour, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/time - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
		}
	}

	h.logger.Info("PUT /sessions/{id}/time - Time selected: session_id=%s, hour=%s", sessionID, req.Hour)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
