package geodist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM_KnownDistances(t *testing.T) {
	// Av. Paulista, São Paulo -> Copacabana, Rio de Janeiro: ~360 km
	d := HaversineKM(-23.5614, -46.6559, -22.9711, -43.1822)
	assert.InDelta(t, 360, d, 10)

	// São Paulo -> Belo Horizonte: ~490 km
	d = HaversineKM(-23.5505, -46.6333, -19.9167, -43.9345)
	assert.InDelta(t, 490, d, 15)
}

func TestHaversineKM_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, HaversineKM(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestHaversineKM_Symmetry(t *testing.T) {
	ab := HaversineKM(-23.5505, -46.6333, -22.9068, -43.1729)
	ba := HaversineKM(-22.9068, -43.1729, -23.5505, -46.6333)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestHaversineKM_SmallDistance(t *testing.T) {
	// Две точки в одном районе: сотни метров, не нули и не километры
	d := HaversineKM(-23.5614, -46.6559, -23.5575, -46.6590)
	assert.Greater(t, d, 0.3)
	assert.Less(t, d, 1.0)
}
