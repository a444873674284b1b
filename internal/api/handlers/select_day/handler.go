package select_day

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
	msgInvalidDate        = "Data inválida: esperado YYYY-MM-DD."
	msgSessionNotFound    = "Sessão não encontrada ou expirada."
	msgSessionTerminal    = "Agendamento já concluído. Inicie uma nova sessão."
	msgWrongStep          = "Operação não permitida nesta etapa."
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

// Handle PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectDay(r.Context(), sessionID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidDate):
			h.logger.Warn("PUT /sessions/{id}/date - Invalid date: session_id=%s, date=%q", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed: session_id=%s, date=%q, error=%v",
				sessionID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var grid *domain.CalendarGrid
	if session.Step == domain.StepPickSchedule {
		grid, err = h.service.Calendar(r.Context(), session.ID)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/date - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
		}
	}

	h.logger.Info("PUT /sessions/{id}/date - Day selected: session_id=%s, date=%s, slots=%d",
		sessionID, req.Date, len(session.Times))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
