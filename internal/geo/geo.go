package geo

import "math"

const (
	// earthRadiusKm - радиус Земли в километрах
	earthRadiusKm = 6371.0
	// minutesPerKm - эвристика времени в пути: 3 минуты на километр (~20 км/ч)
	minutesPerKm = 3.0
)

// DistanceKm вычисляет расстояние большого круга между двумя координатами
// по формуле гаверсинуса, в километрах
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// EtaMinutes переводит расстояние в оценку времени прибытия в минутах.
// Дорожная сеть не моделируется, скорость фиксирована.
func EtaMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm * minutesPerKm))
}
