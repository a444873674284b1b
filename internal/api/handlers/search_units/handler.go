package search_units

import (
	"net/http"
	"strconv"

	"github.com/velalaser/VLL-SchedulingService/internal/api/handlers"
	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
)

type Handler struct {
	useCase SearchUnitsUseCase
	logger  Logger
}

func NewHandler(useCase SearchUnitsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units?q=<query>&seq=<n>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	// seq опционален: REST клиенты могут не участвовать
	// в протоколе живого поиска
	var seq uint64
	if raw := r.URL.Query().Get("seq"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			seq = parsed
		}
	}

	result, err := h.useCase.Execute(r.Context(), &searchUnits.Request{Query: query, Seq: seq})
	if err != nil {
		h.logger.Error("GET /units - Search failed: query=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /units - Search done: mode=%s, units=%d, degraded=%t",
		response.Mode, len(response.Units), response.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
