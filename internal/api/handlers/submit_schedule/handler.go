package submit_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgSessionNotFound    = "Sessão não encontrada ou expirada."
	msgSessionTerminal    = "Agendamento já concluído. Inicie uma nova sessão."
	msgWrongStep          = "Operação não permitida nesta etapa."
	msgSubmitInFlight     = "Envio em andamento. Aguarde."
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

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Submit(r.Context(), sessionID, req.Name, req.Phone)
	if err != nil {
		var vErr *wizard.ValidationError

		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrSessionTerminal):
			handlers.RespondConflict(w, msgSessionTerminal)

		case errors.Is(err, wizard.ErrWrongStep):
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrSubmitInFlight):
			h.logger.Warn("POST /sessions/{id}/submit - Submit already in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.Is(err, wizard.ErrTimeNotAvailable):
			handlers.RespondConflict(w, msgTimeNotAvailable)

		case errors.As(err, &vErr):
			h.logger.Warn("POST /sessions/{id}/submit - Validation failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondValidationError(w, vErr.Fields)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отказ внешней системы не является ошибкой HTTP: сессия остаётся
	// на шаге контактов с уведомлением, клиент рендерит его как есть
	if session.IsTerminal() {
		h.logger.Info("POST /sessions/{id}/submit - Schedule created: session_id=%s", sessionID)
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session, nil))
}
