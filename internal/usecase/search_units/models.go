package search_units

import "github.com/velalaser/VLL-SchedulingService/internal/domain"

// Request модель запроса поиска юнитов
type Request struct {
	// Query сырая строка из поля ввода (город, CEP, штат или имя юнита)
	Query string
	// Seq номер запроса в потоке живого поиска; ответ с устаревшим
	// номером отбрасывается потребителем (правило "побеждает последний")
	Seq uint64
}

// RankedUnit юнит с расстоянием от точки запроса.
// DistanceKM равен nil, когда координат нет или запрос не геокодировался.
type RankedUnit struct {
	Unit       *domain.Unit
	DistanceKM *float64
}

// Response модель ответа поиска
type Response struct {
	Decision domain.SearchDecision
	Units    []RankedUnit
	// Origin координаты распознанного CEP (nil при текстовом поиске
	// или когда геокодер не распознал индекс)
	Origin *domain.Coordinate
	// Degraded выставляется, когда каталог юнитов недоступен:
	// потребитель обязан показать пустое состояние с сообщением
	Degraded bool
	Seq      uint64
}
