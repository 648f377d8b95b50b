package geo

import "math"

// earthRadiusKm - средний радиус Земли в километрах
const earthRadiusKm = 6371.0

// DistanceKm вычисляет расстояние большого круга между двумя точками
// по формуле гаверсинусов. Результат в километрах.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidCoordinates проверяет, что координаты попадают в допустимые границы
func ValidCoordinates(lat, lon float64) bool {
	return math.Abs(lat) <= 90 && math.Abs(lon) <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
