package select_time

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Hour string `json:"hour"` // HH:mm, из списка доступных вариантов
}
