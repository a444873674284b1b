package select_day

// SelectDayRequest HTTP request model
type SelectDayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}
