// Package geo provides the great-circle distance math used by radius search.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the Earth radius the directory's radius semantics are
// defined against. Distances published to users ("within 35 miles") were
// computed with this constant, so it stays fixed here rather than borrowing
// a geodesy library's WGS84 value.
const earthRadiusMiles = 3959.0

// DistanceMiles returns the haversine great-circle distance in miles between
// two points. Points are orb.Points in (lng, lat) order, degrees.
//
// Pure and deterministic; invalid numeric input (NaN, Inf) propagates as NaN
// rather than being clamped.
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}
