// Package geodist implements great-circle distance between two
// latitude/longitude points (haversine formula).
package geodist

import "math"

// EarthRadiusKM is the mean Earth radius used by the haversine formula
const EarthRadiusKM = 6371.0

// HaversineKM returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2), all in degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
