package back_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const (
	msgSessionNotFound = "Sessão não encontrada ou expirada."
	msgSessionTerminal = "Agendamento já concluído. Inicie uma nova sessão."
	msgWrongStep       = "Não há etapa anterior."
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

// Handle POST /api/v1/sessions/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.BackStep(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("POST /sessions/{id}/back - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("POST /sessions/{id}/back - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
		}
	}

	h.logger.Info("POST /sessions/{id}/back - Stepped back: session_id=%s, step=%s", sessionID, session.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
