package live_search_units

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
	"github.com/velalaser/VLL-SchedulingService/pkg/debounce"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Поиск публичный и read-only, ограничение origin не требуется
	CheckOrigin: func(r *http.Request) bool { return true },
}

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

// Handle GET /api/v1/units/live - WebSocket поток живого поиска.
// Клиент шлёт состояние поля ввода на каждое нажатие; сервер отвечает
// результатами для значений, переживших окно тишины (debounce) и
// отличных от предыдущего. Устаревшие ответы не отправляются:
// побеждает последний запрос.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /units/live - WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("GET /units/live - Client connected: %s", r.RemoteAddr)

	session := &liveSession{
		conn:    conn,
		useCase: h.useCase,
		logger:  h.logger,
		ctx:     r.Context(),
	}
	session.run()
}

// liveSession состояние одного WebSocket соединения
type liveSession struct {
	conn    *websocket.Conn
	useCase SearchUnitsUseCase
	logger  Logger
	ctx     context.Context

	// seq номер последнего запущенного поиска; результат пишется
	// только если за время выполнения не стартовал более новый
	seq     atomic.Uint64
	writeMu sync.Mutex
}

func (s *liveSession) run() {
	queue := debounce.New(
		time.Duration(domain.SearchDebounceMillis)*time.Millisecond,
		s.search,
	)
	defer queue.Stop()

	for {
		var msg queryMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("GET /units/live - Read failed: %v", err)
			}
			return
		}
		queue.Push(msg.Query)
	}
}

// search выполняет поиск для пережившего debounce значения.
// Вызывается на таймерной горутине очереди.
func (s *liveSession) search(query string) {
	seq := s.seq.Add(1)

	result, err := s.useCase.Execute(s.ctx, &searchUnits.Request{Query: query, Seq: seq})
	if err != nil {
		s.logger.Error("GET /units/live - Search failed: query=%q, error=%v", query, err)
		return
	}

	// Пока шёл поиск (геокодирование), мог стартовать более новый -
	// его результат уже в пути, наш отбрасываем
	if s.seq.Load() != seq {
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteJSON(fromUseCaseResponse(result)); err != nil {
		s.logger.Warn("GET /units/live - Write failed: %v", err)
	}
}
