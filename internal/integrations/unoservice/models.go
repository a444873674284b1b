package unoservice

// hoursResponse ответ внешней системы на запрос доступных часов
type hoursResponse struct {
	OK            bool        `json:"ok"`
	Timezone      string      `json:"timezone"`
	WeekdayString string      `json:"weekdayString"`
	Weekday       int         `json:"weekday"`
	ServiceID     *int64      `json:"serviceId"`
	Hours         []hourEntry `json:"hours"`
}

// hourEntry один доступный час с привязанной комнатой
type hourEntry struct {
	RoomID int64  `json:"roomId"`
	Date   string `json:"date"`
	Hour   string `json:"hour"`
}

// CreateScheduleRequest тело запроса на создание записи
type CreateScheduleRequest struct {
	Name           string `json:"name"`
	CellPhone      string `json:"cellPhone"` // только цифры, с кодом страны (5511999999999)
	Date           string `json:"date"`      // dd/mm/yyyy
	Hour           string `json:"hour"`      // HH:mm
	DealActivityID int64  `json:"dealActivityId"`
	RoomID         int64  `json:"roomId"`
}

// CreateScheduleResult результат создания записи.
// OK=false с заполненным Message означает отказ внешней системы
// с человекочитаемой причиной.
type CreateScheduleResult struct {
	OK      bool   `json:"ok"`
	ID      *int64 `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorBody тело ошибки внешней системы
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// CreateLeadRequest тело запроса на создание лида
type CreateLeadRequest struct {
	FranchiseID string `json:"franchiseId"`
	Name        string `json:"name"`
	CellPhone   string `json:"cellPhone"`
}

// CreateLeadResult результат создания лида
type CreateLeadResult struct {
	ID string `json:"id"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
