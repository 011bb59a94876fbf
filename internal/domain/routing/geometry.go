package routing

import (
	"reclaim/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// SearchBound returns the box enclosing a circle of radiusMeters around center.
func SearchBound(center orb.Point, radiusMeters float64) orb.Bound {
	return geo.NewBoundAroundPoint(center, radiusMeters)
}

// RouteBound returns the box covering the origin and every stop.
func RouteBound(origin orb.Point, route *entity.OptimizedRoute) orb.Bound {
	points := make(orb.MultiPoint, 0, len(route.Waypoints)+1)
	points = append(points, origin)
	for _, wp := range route.Waypoints {
		points = append(points, wp.Coordinates)
	}

	return points.Bound()
}

// FeatureCollection renders a route as a path line plus one point feature per stop.
func FeatureCollection(origin orb.Point, route *entity.OptimizedRoute) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := make(orb.LineString, 0, len(route.Waypoints)+1)
	path = append(path, origin)
	for _, wp := range route.Waypoints {
		path = append(path, wp.Coordinates)
	}

	line := geojson.NewFeature(path)
	line.Properties["kind"] = "route"
	line.Properties["strategy"] = string(route.Strategy)
	line.Properties["totalDistance"] = route.TotalDistance
	line.Properties["totalDuration"] = route.TotalDuration
	line.Properties["estimatedValue"] = route.EstimatedValue
	fc.Append(line)

	start := geojson.NewFeature(origin)
	start.Properties["kind"] = "origin"
	start.Properties["sequence"] = 0
	fc.Append(start)

	for i, wp := range route.Waypoints {
		stop := geojson.NewFeature(wp.Coordinates)
		stop.ID = wp.ID
		stop.Properties["kind"] = "stop"
		stop.Properties["sequence"] = i + 1
		stop.Properties["inputIndex"] = route.RouteOrder[i]
		stop.Properties["weight"] = wp.Weight
		stop.Properties["value"] = wp.EffectiveValue()
		if wp.Address != "" {
			stop.Properties["address"] = wp.Address
		}
		fc.Append(stop)
	}

	return fc
}
