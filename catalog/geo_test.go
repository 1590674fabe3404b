package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	suez := Coordinate{Lat: 29.90, Lon: 32.55}

	assert.Zero(t, HaversineKm(suez, suez))

	// Port Said sits at the canal's northern entrance.
	portSaid := Coordinate{Lat: 31.26, Lon: 32.30}
	d := HaversineKm(suez, portSaid)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 200.0)

	// Singapore to Rotterdam is a hemisphere away.
	singapore := Coordinate{Lat: 1.26, Lon: 103.84}
	rotterdam := Coordinate{Lat: 51.95, Lon: 4.14}
	d = HaversineKm(singapore, rotterdam)
	assert.Greater(t, d, 10000.0)
	assert.Less(t, d, 11500.0)
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := Coordinate{Lat: 26.60, Lon: 56.25}
	b := Coordinate{Lat: 25.01, Lon: 55.06}
	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}
