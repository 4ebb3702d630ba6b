package geo

import (
	"testing"

	"github.com/jftuga/geodist"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nairobiCBD = models.Coordinate{Longitude: 36.8219, Latitude: -1.2921}
	westlands  = models.Coordinate{Longitude: 36.8106, Latitude: -1.2684}
	mombasa    = models.Coordinate{Longitude: 39.6682, Latitude: -4.0435}
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Between(nairobiCBD, nairobiCBD))
	assert.Zero(t, Distance(0, 0, 0, 0))
}

func TestDistance_Symmetric(t *testing.T) {
	points := []models.Coordinate{nairobiCBD, westlands, mombasa, {Longitude: -179.5, Latitude: 89}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Between(a, b), Between(b, a))
		}
	}
}

func TestDistance_NairobiSanityBand(t *testing.T) {
	d := Between(nairobiCBD, westlands)
	assert.Greater(t, d, 1000.0)
	assert.Less(t, d, 5000.0)
}

func TestDistance_MatchesVincentyReference(t *testing.T) {
	cases := [][2]models.Coordinate{
		{nairobiCBD, westlands},
		{nairobiCBD, mombasa},
		{westlands, {Longitude: 37.2, Latitude: -1.0}},
	}
	for _, c := range cases {
		_, km, err := geodist.VincentyDistance(
			geodist.Coord{Lat: c[0].Latitude, Lon: c[0].Longitude},
			geodist.Coord{Lat: c[1].Latitude, Lon: c[1].Longitude},
		)
		require.NoError(t, err)

		got := Between(c[0], c[1])
		// сфера против эллипсоида: расхождение в пределах 0.5%
		assert.InEpsilon(t, km*1000, got, 0.005)
	}
}

func TestDistance_FiftyKilometresResolvesConsistently(t *testing.T) {
	// ~0.45 градуса широты на экваторе ≈ 50 км
	inside := models.Coordinate{Longitude: 36.82, Latitude: -1.29 + 0.44}
	outside := models.Coordinate{Longitude: 36.82, Latitude: -1.29 + 0.46}
	origin := models.Coordinate{Longitude: 36.82, Latitude: -1.29}

	assert.Less(t, Between(origin, inside), 50000.0)
	assert.Greater(t, Between(origin, outside), 50000.0)
}
