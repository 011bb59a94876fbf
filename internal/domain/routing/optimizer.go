// Package routing orders collection waypoints with greedy heuristics.
// Orders are reproducible for a given input but are not optimal tours.
package routing

import (
	"math"
	"sort"

	"reclaim/internal/domain/entity"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMeters is the sphere radius used by Haversine.
	EarthRadiusMeters = 6_371_000.0

	// DefaultMaxWaypoints caps a single optimization, mirroring routing API limits.
	DefaultMaxWaypoints = 25

	// DefaultBalancedValueThreshold is the mean waypoint value above which balanced picks weighted.
	DefaultBalancedValueThreshold = 400.0

	// TravelMetersPerHour is the effective travel speed used for duration estimates.
	TravelMetersPerHour = 8333.0

	// DwellSecondsPerStop is the fixed service time added for each stop.
	DwellSecondsPerStop = 300.0

	weightNudgePerKg = 0.05
	lookAheadFactor  = 1.5
)

// Optimizer produces visiting orders. The zero value is not usable; use NewOptimizer.
type Optimizer struct {
	maxWaypoints      int
	balancedThreshold float64
}

type Option func(*Optimizer)

// WithMaxWaypoints overrides the waypoint cap; non-positive values are ignored.
func WithMaxWaypoints(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.maxWaypoints = n
		}
	}
}

// WithBalancedThreshold overrides the balanced dispatch threshold; non-positive values are ignored.
func WithBalancedThreshold(v float64) Option {
	return func(o *Optimizer) {
		if v > 0 {
			o.balancedThreshold = v
		}
	}
}

func NewOptimizer(opts ...Option) *Optimizer {
	o := &Optimizer{
		maxWaypoints:      DefaultMaxWaypoints,
		balancedThreshold: DefaultBalancedValueThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

var defaultOptimizer = NewOptimizer()

// Optimize orders waypoints with the default optimizer settings.
func Optimize(origin orb.Point, waypoints []entity.Waypoint, strategy entity.Strategy) *entity.OptimizedRoute {
	return defaultOptimizer.Optimize(origin, waypoints, strategy)
}

// MaxWaypoints returns the configured cap.
func (o *Optimizer) MaxWaypoints() int {
	return o.maxWaypoints
}

// Optimize orders waypoints starting at origin. Input beyond the cap is dropped and
// an empty input yields a zero route. Waypoints must already pass ValidateWaypoints.
func (o *Optimizer) Optimize(origin orb.Point, waypoints []entity.Waypoint, strategy entity.Strategy) *entity.OptimizedRoute {
	if len(waypoints) > o.maxWaypoints {
		waypoints = waypoints[:o.maxWaypoints]
	}

	if strategy == "" {
		strategy = entity.StrategyBalanced
	}

	if len(waypoints) == 0 {
		return &entity.OptimizedRoute{
			Waypoints:  []entity.Waypoint{},
			RouteOrder: []int{},
			Strategy:   strategy,
		}
	}

	stops := withDefaultValues(waypoints)

	resolved := o.resolveStrategy(stops, strategy)

	var order []int
	switch resolved {
	case entity.StrategyWeighted:
		order = weightedOrder(origin, stops)
	default:
		order = nearestOrder(origin, stops)
	}

	return buildRoute(origin, stops, order, resolved)
}

// resolveStrategy maps balanced onto weighted or nearest by mean waypoint value.
func (o *Optimizer) resolveStrategy(stops []entity.Waypoint, strategy entity.Strategy) entity.Strategy {
	switch strategy {
	case entity.StrategyNearest, entity.StrategyWeighted:
		return strategy
	}

	var total float64
	for _, wp := range stops {
		total += wp.EffectiveValue()
	}

	if total/float64(len(stops)) > o.balancedThreshold {
		return entity.StrategyWeighted
	}

	return entity.StrategyNearest
}

// nearestOrder is greedy nearest-neighbor on distance scaled by (1 - weight*0.05).
// Strict comparison keeps the first encountered waypoint on ties.
func nearestOrder(origin orb.Point, stops []entity.Waypoint) []int {
	visited := make([]bool, len(stops))
	order := make([]int, 0, len(stops))
	current := origin

	for len(order) < len(stops) {
		best := -1
		bestCost := math.Inf(1)

		for i, wp := range stops {
			if visited[i] {
				continue
			}

			cost := Haversine(current, wp.Coordinates) * (1 - wp.Weight*weightNudgePerKg)
			if best == -1 || cost < bestCost {
				best = i
				bestCost = cost
			}
		}

		visited[best] = true
		order = append(order, best)
		current = stops[best].Coordinates
	}

	return order
}

// weightedOrder walks waypoints by value/weight descending. A candidate yields its turn
// to the first unvisited waypoint of strictly higher value lying within 1.5x the
// candidate's distance; yielded candidates are appended by plain nearest-neighbor.
func weightedOrder(origin orb.Point, stops []entity.Waypoint) []int {
	ranked := make([]int, len(stops))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return valueRatio(stops[ranked[a]]) > valueRatio(stops[ranked[b]])
	})

	visited := make([]bool, len(stops))
	order := make([]int, 0, len(stops))
	current := origin

	for _, candidate := range ranked {
		if visited[candidate] {
			continue
		}

		next := candidate
		reach := Haversine(current, stops[candidate].Coordinates) * lookAheadFactor
		candidateValue := stops[candidate].EffectiveValue()

		for _, other := range ranked {
			if other == candidate || visited[other] {
				continue
			}
			if stops[other].EffectiveValue() > candidateValue &&
				Haversine(current, stops[other].Coordinates) <= reach {
				next = other

				break
			}
		}

		visited[next] = true
		order = append(order, next)
		current = stops[next].Coordinates
	}

	return appendNearest(current, stops, visited, order)
}

// appendNearest appends unvisited waypoints by raw distance, first encountered wins ties.
func appendNearest(current orb.Point, stops []entity.Waypoint, visited []bool, order []int) []int {
	for len(order) < len(stops) {
		best := -1
		bestDist := math.Inf(1)

		for i, wp := range stops {
			if visited[i] {
				continue
			}

			d := Haversine(current, wp.Coordinates)
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}

		visited[best] = true
		order = append(order, best)
		current = stops[best].Coordinates
	}

	return order
}

// valueRatio is value per kilogram. Weightless stops rank first when they carry value.
func valueRatio(wp entity.Waypoint) float64 {
	value := wp.EffectiveValue()
	if wp.Weight <= 0 {
		if value > 0 {
			return math.Inf(1)
		}

		return 0
	}

	return value / wp.Weight
}

func withDefaultValues(waypoints []entity.Waypoint) []entity.Waypoint {
	stops := make([]entity.Waypoint, len(waypoints))
	for i, wp := range waypoints {
		if wp.Value == nil {
			v := wp.EffectiveValue()
			wp.Value = &v
		}
		stops[i] = wp
	}

	return stops
}

func buildRoute(origin orb.Point, stops []entity.Waypoint, order []int, strategy entity.Strategy) *entity.OptimizedRoute {
	route := &entity.OptimizedRoute{
		Waypoints:  make([]entity.Waypoint, 0, len(order)),
		RouteOrder: order,
		Strategy:   strategy,
	}

	current := origin
	for _, idx := range order {
		wp := stops[idx]
		route.TotalDistance += Haversine(current, wp.Coordinates)
		route.EstimatedValue += wp.EffectiveValue()
		route.Summary.TotalWeight += wp.Weight
		route.Waypoints = append(route.Waypoints, wp)
		current = wp.Coordinates
	}

	route.Summary.TotalStops = len(order)
	route.Summary.AverageDistance = route.TotalDistance / float64(len(order))
	route.TotalDuration = EstimateDuration(route.TotalDistance, len(order))

	return route
}

// EstimateDuration returns seconds of travel at TravelMetersPerHour plus dwell per stop.
func EstimateDuration(distanceMeters float64, stops int) float64 {
	return distanceMeters/TravelMetersPerHour*3600 + float64(stops)*DwellSecondsPerStop
}

// Haversine returns the great-circle distance in meters between two (lon, lat) points.
func Haversine(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
