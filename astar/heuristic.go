package astar

import "math"

// earthRadiusMeters is the mean Earth radius used by Haversine.
const earthRadiusMeters = 6371000.0

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// LatLon is a geographic coordinate in decimal degrees.
type LatLon struct {
	Lat, Lon float64
}

// Euclidean returns a heuristic giving the straight-line distance between
// node and goal in coords. It is admissible when every edge weight is at least
// the planar distance between its endpoints. Nodes missing from coords get 0.
func Euclidean(coords map[string]Point) Heuristic {
	return func(node, goal string) float64 {
		a, okA := coords[node]
		b, okB := coords[goal]
		if !okA || !okB {
			return 0
		}

		return math.Hypot(a.X-b.X, a.Y-b.Y)
	}
}

// Haversine returns a heuristic giving the great-circle distance in meters
// divided by speed, i.e. a lower bound on travel time when weights are
// seconds and speed is the fastest speed in m/s. speed <= 0 means 1
// (plain meters). Nodes missing from coords get 0.
func Haversine(coords map[string]LatLon, speed float64) Heuristic {
	if speed <= 0 {
		speed = 1
	}

	return func(node, goal string) float64 {
		a, okA := coords[node]
		b, okB := coords[goal]
		if !okA || !okB {
			return 0
		}

		return haversineMeters(a, b) / speed
	}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func haversineMeters(a, b LatLon) float64 {
	lat1, lat2 := toRadians(a.Lat), toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}
