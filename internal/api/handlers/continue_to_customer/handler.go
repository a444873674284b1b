package continue_to_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const (
	msgSessionNotFound = "Sessão não encontrada ou expirada."
	msgSessionTerminal = "Agendamento já concluído. Inicie uma nova sessão."
	msgWrongStep       = "Operação não permitida nesta etapa."
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

// Handle POST /api/v1/sessions/{sessionId}/continue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.ContinueToCustomer(r.Context(), sessionID)
	if err != nil {
		var vErr *wizard.ValidationError

		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/continue - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		case errors.As(err, &vErr):
			h.logger.Warn("POST /sessions/{id}/continue - Validation failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondValidationError(w, vErr.Fields)

		default:
			h.logger.Error("POST /sessions/{id}/continue - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/continue - Advanced to contact step: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, nil))
}
