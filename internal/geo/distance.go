// Package geo считает расстояния по большому кругу.
package geo

import (
	"math"

	"github.com/shenikar/snaktox/internal/models"
)

// EarthRadiusMeters - средний радиус Земли для формулы гаверсинуса
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние в метрах между двумя точками (градусы) по формуле гаверсинуса
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Between - то же самое для пары Coordinate
func Between(a, b models.Coordinate) float64 {
	return Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
