package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const msgSessionNotFound = "Sessão não encontrada ou expirada."

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("GET /sessions/{id} - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
