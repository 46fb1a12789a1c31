// Package geo provides the distance math used for delivery eligibility
// checks and radius-scoped notification targeting.
package geo

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// BoundingBox is an axis-aligned latitude/longitude rectangle. It is a coarse
// pre-filter only; candidates inside the box still need an exact distance check.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the point lies inside the box, borders included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat &&
		c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}

// Valid reports whether the coordinate is a finite point on the globe.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceKm calculates the great-circle distance between two points using
// the Haversine formula. The result is in kilometers and is not rounded;
// rounding is for display only.
func DistanceKm(from, to Coordinate) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	deltaLat := (to.Latitude - from.Latitude) * math.Pi / 180
	deltaLng := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// BoxAround returns the bounding box that encloses the circle of the given
// radius around the center. The longitude span widens with latitude; near the
// poles the box degenerates to the full longitude range.
func BoxAround(center Coordinate, radiusKm float64) BoundingBox {
	latDelta := radiusKm / earthRadiusKm * 180 / math.Pi

	lngDelta := 180.0
	if cosLat := math.Cos(center.Latitude * math.Pi / 180); cosLat > 1e-9 {
		lngDelta = latDelta / cosLat
	}

	box := BoundingBox{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLng: center.Longitude - lngDelta,
		MaxLng: center.Longitude + lngDelta,
	}
	if box.MinLat < -90 {
		box.MinLat = -90
	}
	if box.MaxLat > 90 {
		box.MaxLat = 90
	}
	if box.MinLng < -180 {
		box.MinLng = -180
	}
	if box.MaxLng > 180 {
		box.MaxLng = 180
	}
	return box
}
