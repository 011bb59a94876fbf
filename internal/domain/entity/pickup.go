package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PlasticCategory is the resin family of a pickup.
type PlasticCategory string

const (
	CategoryPET   PlasticCategory = "PET"
	CategoryHDPE  PlasticCategory = "HDPE"
	CategoryLDPE  PlasticCategory = "LDPE"
	CategoryPP    PlasticCategory = "PP"
	CategoryPS    PlasticCategory = "PS"
	CategoryOther PlasticCategory = "Other"
)

// IsValid reports whether c is a known category.
func (c PlasticCategory) IsValid() bool {
	switch c {
	case CategoryPET, CategoryHDPE, CategoryLDPE, CategoryPP, CategoryPS, CategoryOther:
		return true
	default:
		return false
	}
}

// PickupStatus tracks a pickup through verification and sale.
type PickupStatus string

const (
	PickupStatusPending  PickupStatus = "pending"
	PickupStatusVerified PickupStatus = "verified"
	PickupStatusRejected PickupStatus = "rejected"
	PickupStatusPaid     PickupStatus = "paid"
)

// CountsAsVerified reports whether the status contributes to milestone counts.
func (s PickupStatus) CountsAsVerified() bool {
	return s == PickupStatusVerified || s == PickupStatusPaid
}

// PickupVerification holds the outcome of classification and review.
type PickupVerification struct {
	AIConfidence *float64   `json:"ai_confidence,omitempty"`
	ManualReview bool       `json:"manual_review"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
}

// PickupPhotos references stored photo objects; only presence matters here.
type PickupPhotos struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// Pickup is a collector's logged collection of plastic.
type Pickup struct {
	ID              uuid.UUID          `json:"id"`
	CollectorID     uuid.UUID          `json:"collector_id"`
	Category        PlasticCategory    `json:"category"`
	EstimatedWeight float64            `json:"estimated_weight"`
	ActualWeight    *float64           `json:"actual_weight,omitempty"`
	Location        orb.Point          `json:"location"`
	Address         string             `json:"address,omitempty"`
	Status          PickupStatus       `json:"status"`
	Verification    PickupVerification `json:"verification"`
	Photos          PickupPhotos       `json:"photos"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ScoringWeight returns the actual weight when known, else the estimate.
func (p *Pickup) ScoringWeight() float64 {
	if p.ActualWeight != nil {
		return *p.ActualWeight
	}

	return p.EstimatedWeight
}

// HasAfterPhoto reports whether an after photo was attached.
func (p *Pickup) HasAfterPhoto() bool {
	return p.Photos.After != ""
}

// AsWaypoint converts a pending pickup into an optimizer stop.
func (p *Pickup) AsWaypoint() Waypoint {
	return Waypoint{
		ID:          p.ID.String(),
		Coordinates: p.Location,
		Address:     p.Address,
		Weight:      p.EstimatedWeight,
		Category:    p.Category,
		Status:      string(p.Status),
	}
}

// PickupVerifiedEvent is published when a pickup enters the verified state.
type PickupVerifiedEvent struct {
	PickupID    uuid.UUID `json:"pickup_id"`
	CollectorID uuid.UUID `json:"collector_id"`
	VerifiedAt  time.Time `json:"verified_at"`
}
