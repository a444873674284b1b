package create_lead

// Request модель запроса на создание лида
type Request struct {
	// ClientID идентификатор клиента (для черновика мастера записи)
	ClientID string
	Name     string
	Phone    string // только цифры, без кода страны
	UnitID   int64
}

// Response модель ответа
type Response struct {
	LeadID string
}
