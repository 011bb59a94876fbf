// Package reward scores verified pickups and holds the milestone table.
package reward

import (
	"fmt"
	"math"

	"reclaim/internal/domain/entity"
)

const (
	tokensPerKg = 1.0

	highConfidence           = 0.95
	highConfidenceMultiplier = 1.2
	goodConfidence           = 0.90
	goodConfidenceMultiplier = 1.1

	afterPhotoBonus    = 5.0
	accuracyBonus      = 10.0
	accuracyTolerance  = 0.05
	manualReviewFactor = 0.05
)

var categoryMultipliers = map[entity.PlasticCategory]float64{
	entity.CategoryPET:   1.2,
	entity.CategoryHDPE:  1.1,
	entity.CategoryLDPE:  0.9,
	entity.CategoryPP:    1.0,
	entity.CategoryPS:    0.9,
	entity.CategoryOther: 0.8,
}

// CategoryMultiplier returns the token multiplier for a category; unknown categories score as Other.
func CategoryMultiplier(category entity.PlasticCategory) float64 {
	if m, ok := categoryMultipliers[category]; ok {
		return m
	}

	return categoryMultipliers[entity.CategoryOther]
}

// PickupParams are the scoring inputs of one pickup.
type PickupParams struct {
	Category            entity.PlasticCategory
	Weight              float64  // actual weight when known, else the estimate
	AIConfidence        *float64 // nil scores as 1.0
	HasAfterPhoto       bool
	ActualWeight        *float64
	WasManuallyReviewed bool
}

// ParamsFromPickup maps a stored pickup onto scoring inputs.
func ParamsFromPickup(p *entity.Pickup) PickupParams {
	return PickupParams{
		Category:            p.Category,
		Weight:              p.ScoringWeight(),
		AIConfidence:        p.Verification.AIConfidence,
		HasAfterPhoto:       p.HasAfterPhoto(),
		ActualWeight:        p.ActualWeight,
		WasManuallyReviewed: p.Verification.ManualReview,
	}
}

// Calculation is a scored pickup. The rounded parts do not always sum to TotalTokens
// because the confidence multiplier replaces the running total instead of adding to it.
type Calculation struct {
	BaseTokens        int64    `json:"baseTokens"`
	CategoryBonus     int64    `json:"categoryBonus"`
	ConfidenceBonus   int64    `json:"confidenceBonus"`
	AfterPhotoBonus   int64    `json:"afterPhotoBonus"`
	AccuracyBonus     int64    `json:"accuracyBonus"`
	ManualReviewBonus int64    `json:"manualReviewBonus"`
	TotalTokens       int64    `json:"totalTokens"`
	Breakdown         []string `json:"breakdown"`
}

// CalculateTokensForPickup scores a pickup. Steps apply in a fixed order and only the
// reported parts and the final total are rounded.
func CalculateTokensForPickup(params PickupParams) Calculation {
	multiplier := CategoryMultiplier(params.Category)
	confidence := 1.0
	if params.AIConfidence != nil {
		confidence = *params.AIConfidence
	}

	var result Calculation

	base := params.Weight * tokensPerKg * multiplier
	result.BaseTokens = round(base)
	result.CategoryBonus = round(base - params.Weight*tokensPerKg)
	result.Breakdown = append(result.Breakdown,
		fmt.Sprintf("Base: %.2f kg %s x %.1f = %d tokens", params.Weight, params.Category, multiplier, result.BaseTokens))

	total := base

	switch {
	case confidence >= highConfidence:
		total = base * highConfidenceMultiplier
		result.ConfidenceBonus = round(total - base)
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("High AI confidence (%.0f%%): x%.1f, +%d tokens", confidence*100, highConfidenceMultiplier, result.ConfidenceBonus))
	case confidence >= goodConfidence:
		total = base * goodConfidenceMultiplier
		result.ConfidenceBonus = round(total - base)
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("Good AI confidence (%.0f%%): x%.1f, +%d tokens", confidence*100, goodConfidenceMultiplier, result.ConfidenceBonus))
	}

	if params.HasAfterPhoto {
		total += afterPhotoBonus
		result.AfterPhotoBonus = round(afterPhotoBonus)
		result.Breakdown = append(result.Breakdown, fmt.Sprintf("After photo: +%d tokens", result.AfterPhotoBonus))
	}

	if params.ActualWeight != nil && params.Weight > 0 &&
		math.Abs(*params.ActualWeight-params.Weight)/params.Weight <= accuracyTolerance {
		total += accuracyBonus
		result.AccuracyBonus = round(accuracyBonus)
		result.Breakdown = append(result.Breakdown, fmt.Sprintf("Weight accuracy: +%d tokens", result.AccuracyBonus))
	}

	if params.WasManuallyReviewed {
		bonus := total * manualReviewFactor
		total += bonus
		result.ManualReviewBonus = round(bonus)
		result.Breakdown = append(result.Breakdown, fmt.Sprintf("Manual review: +%d tokens", result.ManualReviewBonus))
	}

	result.TotalTokens = round(total)

	return result
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
