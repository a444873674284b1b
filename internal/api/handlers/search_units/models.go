package search_units

import (
	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
)

// UnitResponse HTTP представление юнита в результатах поиска
type UnitResponse struct {
	ID         int64   `json:"id"`
	ExternalID string  `json:"externalId,omitempty"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	Bookable   bool    `json:"bookable"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	WhatsApp   *string `json:"whatsapp,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`

	// DistanceKM заполняется только при поиске по полному CEP
	DistanceKM *float64 `json:"distanceKm,omitempty"`
	// Distance человекочитаемое расстояние ("12.3 km"), пустое без координат
	Distance string `json:"distance,omitempty"`
}

// SearchResponse HTTP response модель поиска юнитов
type SearchResponse struct {
	Mode     string         `json:"mode"`
	Units    []UnitResponse `json:"units"`
	Degraded bool           `json:"degraded"`
	Seq      uint64         `json:"seq"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchUnits.Response) *SearchResponse {
	units := make([]UnitResponse, 0, len(resp.Units))
	for _, ranked := range resp.Units {
		units = append(units, fromRankedUnit(ranked))
	}

	return &SearchResponse{
		Mode:     string(resp.Decision.Mode),
		Units:    units,
		Degraded: resp.Degraded,
		Seq:      resp.Seq,
	}
}

func fromRankedUnit(ranked searchUnits.RankedUnit) UnitResponse {
	u := ranked.Unit
	resp := UnitResponse{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Slug:       u.Slug,
		Bookable:   u.Bookable,
		Street:     u.Address.Street,
		Number:     u.Address.Number,
		City:       u.Address.City,
		State:      u.Address.State,
		PostalCode: u.Address.PostalCode,
		Phone:      u.Phone,
		WhatsApp:   u.WhatsApp,
		Instagram:  u.Instagram,
		DistanceKM: ranked.DistanceKM,
		Distance:   searchUnits.FormatDistance(ranked.DistanceKM),
	}
	return resp
}
