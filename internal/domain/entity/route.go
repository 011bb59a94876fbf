package entity

import "github.com/paulmach/orb"

// DefaultValuePerKg is the value assumed for a waypoint that carries no explicit estimate.
const DefaultValuePerKg = 30.0

// Strategy selects the ordering heuristic used by the route optimizer.
type Strategy string

const (
	StrategyNearest  Strategy = "nearest"
	StrategyWeighted Strategy = "weighted"
	StrategyBalanced Strategy = "balanced"
)

// IsValid reports whether s names a known strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyNearest, StrategyWeighted, StrategyBalanced:
		return true
	default:
		return false
	}
}

// Waypoint is a candidate collection stop. Coordinates is (lon, lat) in WGS84 degrees.
type Waypoint struct {
	ID          string          `json:"id"`
	Coordinates orb.Point       `json:"coordinates"`
	Address     string          `json:"address,omitempty"`
	Weight      float64         `json:"weight"`
	Value       *float64        `json:"value,omitempty"`
	Category    PlasticCategory `json:"category,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// EffectiveValue returns Value, or Weight x DefaultValuePerKg when Value is absent.
func (w Waypoint) EffectiveValue() float64 {
	if w.Value != nil {
		return *w.Value
	}

	return w.Weight * DefaultValuePerKg
}

// RouteSummary aggregates an optimized route.
type RouteSummary struct {
	TotalStops      int     `json:"totalStops"`
	TotalWeight     float64 `json:"totalWeight"`
	AverageDistance float64 `json:"averageDistance"` // meters per stop
}

// OptimizedRoute is the output of one optimization call.
type OptimizedRoute struct {
	Waypoints      []Waypoint   `json:"waypoints"`
	TotalDistance  float64      `json:"totalDistance"` // meters
	TotalDuration  float64      `json:"totalDuration"` // seconds
	EstimatedValue float64      `json:"estimatedValue"`
	RouteOrder     []int        `json:"routeOrder"`
	Strategy       Strategy     `json:"strategy"` // Strategy that actually produced the order.
	Summary        RouteSummary `json:"summary"`
}
