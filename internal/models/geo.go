package models

// Coordinate - точка в десятичных градусах, порядок как в GeoJSON: [lon, lat]
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Valid проверяет диапазоны долготы и широты
func (c Coordinate) Valid() bool {
	return c.Longitude >= -180 && c.Longitude <= 180 &&
		c.Latitude >= -90 && c.Latitude <= 90
}
