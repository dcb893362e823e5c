package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(26.9, 75.8, 26.9, 75.8))
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Один градус широты на сфере радиусом 6371 км - примерно 111.19 км
	distance := DistanceKm(26.0, 75.8, 27.0, 75.8)
	assert.InDelta(t, 111.19, distance, 0.1)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	forward := DistanceKm(26.9124, 75.7873, 26.8505, 75.8057)
	backward := DistanceKm(26.8505, 75.8057, 26.9124, 75.7873)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	near := DistanceKm(26.9, 75.8, 26.91, 75.8)
	far := DistanceKm(26.9, 75.8, 26.95, 75.8)
	assert.Less(t, near, far)
}

func TestEtaMinutes(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{"нулевое расстояние", 0, 0},
		{"дробное округляется вверх", 1.1, 4},
		{"целое произведение не меняется", 2.0, 6},
		{"малое расстояние дает минуту", 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EtaMinutes(tt.distanceKm))
		})
	}
}
