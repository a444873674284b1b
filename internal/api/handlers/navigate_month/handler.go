package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidDelta       = "Delta inválido: esperado -1 ou 1."
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

// Handle POST /api/v1/sessions/{sessionId}/calendar/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateMonthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.NavigateMonth(r.Context(), sessionID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar/navigate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDelta)

		default:
			h.logger.Error("POST /sessions/{id}/calendar/navigate - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	grid, gridErr := h.service.Calendar(r.Context(), session.ID)
	if gridErr != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/navigate - Failed to build calendar: session_id=%s, error=%v",
			sessionID, gridErr)
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, grid))
}
