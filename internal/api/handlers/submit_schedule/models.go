package submit_schedule

// SubmitScheduleRequest HTTP request model
type SubmitScheduleRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
