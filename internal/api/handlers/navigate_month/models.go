package navigate_month

// NavigateMonthRequest HTTP request model.
// Delta принимает только -1 (предыдущий месяц) и 1 (следующий).
type NavigateMonthRequest struct {
	Delta int `json:"delta"`
}
