package select_unit

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
	msgUnitNotFound       = "Unidade não encontrada."
	msgUnitNotBookable    = "Unidade não disponível para agendamento online."
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

// Handle PUT /api/v1/sessions/{sessionId}/unit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectUnitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/unit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectUnit(r.Context(), sessionID, req.UnitID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/unit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			h.logger.Warn("PUT /sessions/{id}/unit - Session terminal: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrUnitNotFound):
			h.logger.Warn("PUT /sessions/{id}/unit - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, wizard.ErrUnitNotBookable):
			h.logger.Warn("PUT /sessions/{id}/unit - Unit not bookable: unit_id=%d", req.UnitID)
			handlers.RespondBadRequest(w, msgUnitNotBookable)

		default:
			h.logger.Error("PUT /sessions/{id}/unit - Failed: session_id=%s, unit_id=%d, error=%v",
				sessionID, req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/unit - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
		}
	}

	h.logger.Info("PUT /sessions/{id}/unit - Unit selected: session_id=%s, unit_id=%d", sessionID, req.UnitID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
