package create_lead

import (
	"errors"
	"net/http"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	"github.com/velalaser/VLL-SchedulingService/internal/api/middleware"
	createLead "github.com/velalaser/VLL-SchedulingService/internal/usecase/create_lead"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidInput       = "Dados inválidos. Verifique os campos e tente novamente."
	msgUnitNotFound       = "Unidade não encontrada."
	msgUnitNotBookable    = "Unidade não disponível para agendamento online."
)

type Handler struct {
	useCase CreateLeadUseCase
	logger  Logger
}

func NewHandler(useCase CreateLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientID := middleware.ClientIDFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, createLead.ErrInvalidInput):
			h.logger.Warn("POST /leads - Invalid input: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createLead.ErrUnitNotFound):
			h.logger.Warn("POST /leads - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, createLead.ErrUnitNotBookable):
			h.logger.Warn("POST /leads - Unit not bookable: unit_id=%d", req.UnitID)
			handlers.RespondBadRequest(w, msgUnitNotBookable)

		default:
			h.logger.Error("POST /leads - Failed to create lead: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leads - Lead created: lead_id=%s, unit_id=%d", result.LeadID, req.UnitID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
