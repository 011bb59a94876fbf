package routing

import (
	"math"
	"strconv"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"

	"github.com/paulmach/orb"
)

// ValidateWaypoints rejects the first malformed waypoint with a *ValidationError.
func ValidateWaypoints(waypoints []entity.Waypoint) error {
	seen := make(map[string]int, len(waypoints))

	for i, wp := range waypoints {
		if wp.ID == "" {
			return domainerrors.NewValidationError(i, "missing id")
		}
		if first, dup := seen[wp.ID]; dup {
			return domainerrors.NewValidationError(i, "duplicate id of waypoint "+strconv.Itoa(first))
		}
		seen[wp.ID] = i

		if reason := checkPoint(wp.Coordinates); reason != "" {
			return domainerrors.NewValidationError(i, reason)
		}
		if math.IsNaN(wp.Weight) || math.IsInf(wp.Weight, 0) || wp.Weight < 0 {
			return domainerrors.NewValidationError(i, "weight must be a non-negative number")
		}
		if wp.Value != nil && (math.IsNaN(*wp.Value) || math.IsInf(*wp.Value, 0) || *wp.Value < 0) {
			return domainerrors.NewValidationError(i, "value must be a non-negative number")
		}
	}

	return nil
}

// ValidateOrigin reports a bad route origin using index -1.
func ValidateOrigin(origin orb.Point) error {
	if reason := checkPoint(origin); reason != "" {
		return domainerrors.NewValidationError(-1, "origin "+reason)
	}

	return nil
}

func checkPoint(p orb.Point) string {
	lng, lat := p.Lon(), p.Lat()
	if math.IsNaN(lng) || math.IsNaN(lat) || math.IsInf(lng, 0) || math.IsInf(lat, 0) {
		return "coordinates are not finite"
	}
	if lat < -90 || lat > 90 {
		return "latitude out of range"
	}
	if lng < -180 || lng > 180 {
		return "longitude out of range"
	}

	return ""
}
