package search_units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/pkg/ptr"
)

func unitAt(id int64, name string, lat, lon float64) *domain.Unit {
	return &domain.Unit{
		ID:   id,
		Name: name,
		Address: domain.Address{
			Latitude:  ptr.Ptr(lat),
			Longitude: ptr.Ptr(lon),
		},
	}
}

func unitWithoutCoords(id int64, name string) *domain.Unit {
	return &domain.Unit{ID: id, Name: name}
}

func TestRankByDistance_OrdersByProximity(t *testing.T) {
	// Точка запроса: Av. Paulista (CEP 01310-100)
	origin := domain.Coordinate{Lat: -23.5614, Lon: -46.6559}

	units := []*domain.Unit{
		unitAt(1, "Rio de Janeiro", -22.9068, -43.1729),
		unitAt(2, "Paulista", -23.5611, -46.6563),
		unitAt(3, "Campinas", -22.9099, -47.0626),
	}

	ranked := rankByDistance(units, origin)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].Unit.ID)
	assert.Equal(t, int64(3), ranked[1].Unit.ID)
	assert.Equal(t, int64(1), ranked[2].Unit.ID)

	// Ближайший юнит буквально за углом
	require.NotNil(t, ranked[0].DistanceKM)
	assert.Less(t, *ranked[0].DistanceKM, 1.0)
}

func TestRankByDistance_UnitsWithoutCoordsGoLast(t *testing.T) {
	origin := domain.Coordinate{Lat: -23.5614, Lon: -46.6559}

	units := []*domain.Unit{
		unitWithoutCoords(1, "Sem endereço A"),
		unitAt(2, "Paulista", -23.5611, -46.6563),
		unitWithoutCoords(3, "Sem endereço B"),
	}

	ranked := rankByDistance(units, origin)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].Unit.ID)
	// Юниты без координат сохраняют исходный взаимный порядок
	assert.Equal(t, int64(1), ranked[1].Unit.ID)
	assert.Equal(t, int64(3), ranked[2].Unit.ID)
	assert.Nil(t, ranked[1].DistanceKM)
	assert.Nil(t, ranked[2].DistanceKM)
}

func TestRankByDistance_Totality(t *testing.T) {
	// Ранжирование никогда не теряет юниты
	origin := domain.Coordinate{Lat: -23.5614, Lon: -46.6559}

	units := []*domain.Unit{
		unitWithoutCoords(1, "A"),
		unitWithoutCoords(2, "B"),
		unitWithoutCoords(3, "C"),
	}

	ranked := rankByDistance(units, origin)
	require.Len(t, ranked, len(units))
	for i, r := range ranked {
		assert.Equal(t, units[i].ID, r.Unit.ID)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "12.3 km", FormatDistance(ptr.Ptr(12.34)))
	assert.Equal(t, "0.0 km", FormatDistance(ptr.Ptr(0.01)))
	assert.Equal(t, "", FormatDistance(nil))
}
