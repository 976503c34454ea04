package ranking

import "math"

const earthRadiusMiles = 3958.8

// Miles is the great-circle distance between two WGS84 coordinates.
func Miles(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// RoundMiles rounds a distance to one decimal mile for display.
func RoundMiles(miles float64) float64 {
	return math.Round(miles*10) / 10
}
