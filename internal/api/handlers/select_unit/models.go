package select_unit

// SelectUnitRequest HTTP request model
type SelectUnitRequest struct {
	UnitID int64 `json:"unitId"`
}
