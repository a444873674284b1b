package search_units

import (
	"fmt"
	"math"
	"sort"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/pkg/geodist"
)

// distanceOrInf расстояние от точки до юнита; юниты без координат
// считаются бесконечно далёкими и сортируются в конец
func distanceOrInf(origin domain.Coordinate, u *domain.Unit) float64 {
	coord := u.Coordinates()
	if coord == nil {
		return math.Inf(1)
	}
	return geodist.HaversineKM(origin.Lat, origin.Lon, coord.Lat, coord.Lon)
}

// rankByDistance сортирует юниты по возрастанию расстояния от origin.
// Стабильная сортировка: юниты без координат сохраняют взаимный
// порядок исходного списка.
func rankByDistance(units []*domain.Unit, origin domain.Coordinate) []RankedUnit {
	ranked := make([]RankedUnit, len(units))
	for i, u := range units {
		d := distanceOrInf(origin, u)
		ranked[i] = RankedUnit{Unit: u}
		if !math.IsInf(d, 1) {
			dist := d
			ranked[i].DistanceKM = &dist
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := math.Inf(1), math.Inf(1)
		if ranked[i].DistanceKM != nil {
			di = *ranked[i].DistanceKM
		}
		if ranked[j].DistanceKM != nil {
			dj = *ranked[j].DistanceKM
		}
		return di < dj
	})

	return ranked
}

// unranked оборачивает список без расстояний (текстовый поиск,
// нераспознанный CEP, пустой запрос)
func unranked(units []*domain.Unit) []RankedUnit {
	ranked := make([]RankedUnit, len(units))
	for i, u := range units {
		ranked[i] = RankedUnit{Unit: u}
	}
	return ranked
}

// FormatDistance форматирует расстояние для показа: "12.3 km".
// Пустая строка, когда расстояние неизвестно.
func FormatDistance(distanceKM *float64) string {
	if distanceKM == nil {
		return ""
	}
	return fmt.Sprintf("%.1f km", *distanceKM)
}
