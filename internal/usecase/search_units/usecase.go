package search_units

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/service/directory"
)

// UseCase use case многостратегийного поиска юнитов:
// пустой запрос / недобранный CEP -> полный список,
// текст -> фильтр по подстроке,
// полный CEP -> геокодирование + ранжирование по расстоянию
type UseCase struct {
	directory Directory
	geocode   GeocodeClient
	logger    Logger

	// Одноместный кеш геокодера: последний CEP и его координаты.
	// nil координаты тоже кешируются - повторный запрос того же CEP
	// не должен дёргать геокодер после неудачи.
	cacheMu     sync.Mutex
	lastCEP     string
	lastCoords  *domain.Coordinate
	cacheFilled bool
}

// NewUseCase создает новый экземпляр use case поиска
func NewUseCase(dir Directory, geocode GeocodeClient, logger Logger) *UseCase {
	return &UseCase{
		directory: dir,
		geocode:   geocode,
		logger:    logger,
	}
}

// Execute выполняет один поисковый запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	decision := Classify(req.Query)

	switch decision.Mode {
	case domain.SearchModeFreeText:
		return uc.searchText(ctx, decision, req.Seq)
	case domain.SearchModeFullPostalCode:
		return uc.searchPostalCode(ctx, decision, req.Seq)
	default:
		// SearchModeAll и SearchModePartialPostalCode не сужают список
		return uc.listAll(ctx, decision, req.Seq)
	}
}

func (uc *UseCase) listAll(ctx context.Context, decision domain.SearchDecision, seq uint64) (*Response, error) {
	units, err := uc.directory.All(ctx)
	if err != nil {
		return uc.degraded(decision, seq, err)
	}
	return &Response{Decision: decision, Units: unranked(units), Seq: seq}, nil
}

func (uc *UseCase) searchText(ctx context.Context, decision domain.SearchDecision, seq uint64) (*Response, error) {
	units, err := uc.directory.FilterByText(ctx, decision.Query)
	if err != nil {
		return uc.degraded(decision, seq, err)
	}

	uc.logger.Info("Execute: text search %q matched %d units", decision.Query, len(units))
	return &Response{Decision: decision, Units: unranked(units), Seq: seq}, nil
}

func (uc *UseCase) searchPostalCode(ctx context.Context, decision domain.SearchDecision, seq uint64) (*Response, error) {
	units, err := uc.directory.All(ctx)
	if err != nil {
		return uc.degraded(decision, seq, err)
	}

	coord, err := uc.resolveCached(ctx, decision.PostalCode)
	if err != nil {
		// Сбой геокодера: кешируем неудачу и отдаём неранжированный список
		uc.logger.Error("Execute: geocode failed for cep=%s: %v", decision.PostalCode, err)
		uc.storeCache(decision.PostalCode, nil)
		return &Response{Decision: decision, Units: unranked(units), Seq: seq}, nil
	}

	if coord == nil {
		// Индекс не распознан - тоже штатный исход
		uc.logger.Info("Execute: cep=%s not resolved, returning unranked list", decision.PostalCode)
		return &Response{Decision: decision, Units: unranked(units), Seq: seq}, nil
	}

	uc.logger.Info("Execute: cep=%s resolved to (%.4f, %.4f), ranking %d units",
		decision.PostalCode, coord.Lat, coord.Lon, len(units))

	return &Response{
		Decision: decision,
		Units:    rankByDistance(units, *coord),
		Origin:   coord,
		Seq:      seq,
	}, nil
}

// resolveCached возвращает координаты CEP, переиспользуя последний
// результат (включая закешированное "не распознан") и выполняя не
// более одного запроса к геокодеру на новый CEP
func (uc *UseCase) resolveCached(ctx context.Context, digits string) (*domain.Coordinate, error) {
	uc.cacheMu.Lock()
	if uc.cacheFilled && uc.lastCEP == digits {
		coord := uc.lastCoords
		uc.cacheMu.Unlock()
		return coord, nil
	}
	uc.cacheMu.Unlock()

	coord, err := uc.geocode.ResolvePostalCode(ctx, digits)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode: %v", ErrInternal, err)
	}

	uc.storeCache(digits, coord)
	return coord, nil
}

func (uc *UseCase) storeCache(digits string, coord *domain.Coordinate) {
	uc.cacheMu.Lock()
	uc.lastCEP = digits
	uc.lastCoords = coord
	uc.cacheFilled = true
	uc.cacheMu.Unlock()
}

// degraded сводит недоступность каталога к пустому ответу с флагом -
// поиск никогда не падает из-за сбоя загрузки каталога
func (uc *UseCase) degraded(decision domain.SearchDecision, seq uint64, err error) (*Response, error) {
	if errors.Is(err, directory.ErrUnavailable) {
		uc.logger.Warn("Execute: unit directory unavailable, returning empty result")
		return &Response{Decision: decision, Units: []RankedUnit{}, Degraded: true, Seq: seq}, nil
	}
	return nil, fmt.Errorf("%w: directory: %v", ErrInternal, err)
}
