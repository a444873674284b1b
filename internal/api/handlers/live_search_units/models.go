package live_search_units

import (
	searchUnitsHandler "github.com/velalaser/VLL-SchedulingService/internal/api/handlers/search_units"
	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
)

// queryMessage входящее сообщение: очередное состояние поля ввода
type queryMessage struct {
	Query string `json:"query"`
}

// resultMessage исходящее сообщение с результатами поиска.
// Seq растёт с каждым выполненным поиском: клиент отбрасывает
// сообщение с номером меньше последнего показанного.
type resultMessage struct {
	Seq      uint64                            `json:"seq"`
	Mode     string                            `json:"mode"`
	Units    []searchUnitsHandler.UnitResponse `json:"units"`
	Degraded bool                              `json:"degraded"`
}

// fromUseCaseResponse конвертирует ответ use case в исходящее сообщение
func fromUseCaseResponse(resp *searchUnits.Response) *resultMessage {
	converted := searchUnitsHandler.FromUseCaseResponse(resp)
	return &resultMessage{
		Seq:      resp.Seq,
		Mode:     converted.Mode,
		Units:    converted.Units,
		Degraded: converted.Degraded,
	}
}
