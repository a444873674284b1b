package create_session

// CreateSessionRequest HTTP request model.
// UnitExternalID опционален: ссылка со страницы юнита сразу
// предвыбирает его в мастере.
type CreateSessionRequest struct {
	UnitExternalID string `json:"unitExternalId,omitempty"`
}
