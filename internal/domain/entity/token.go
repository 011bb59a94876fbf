package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeEarned   TransactionType = "earned"
	TransactionTypeRedeemed TransactionType = "redeemed"
	TransactionTypeBonus    TransactionType = "bonus"
	TransactionTypePenalty  TransactionType = "penalty"
	TransactionTypeExpired  TransactionType = "expired"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeEarned, TransactionTypeRedeemed, TransactionTypeBonus,
		TransactionTypePenalty, TransactionTypeExpired:
		return true
	default:
		return false
	}
}

// TransactionSource names what caused a ledger entry.
type TransactionSource string

const (
	SourcePickupVerification TransactionSource = "pickup_verification"
	SourceMilestone          TransactionSource = "milestone"
	SourceReferral           TransactionSource = "referral"
	SourceRedemption         TransactionSource = "redemption"
	SourceBonus              TransactionSource = "bonus"
	SourcePenalty            TransactionSource = "penalty"
)

func (s TransactionSource) IsValid() bool {
	switch s {
	case SourcePickupVerification, SourceMilestone, SourceReferral,
		SourceRedemption, SourceBonus, SourcePenalty:
		return true
	default:
		return false
	}
}

// TransactionType maps a source onto the ledger type it records as. Only milestone and
// bonus sources record as bonus; every other source, negative amounts included, is earned.
func (s TransactionSource) TransactionType() TransactionType {
	switch s {
	case SourceMilestone, SourceBonus:
		return TransactionTypeBonus
	default:
		return TransactionTypeEarned
	}
}

// TransactionMetadata is the per-source payload of a ledger entry.
type TransactionMetadata interface {
	MetadataSource() TransactionSource
}

// PickupMetadata records the inputs and breakdown of a pickup reward.
type PickupMetadata struct {
	Category      PlasticCategory `json:"category"`
	Weight        float64         `json:"weight"`
	AIConfidence  float64         `json:"ai_confidence"`
	HasAfterPhoto bool            `json:"has_after_photo"`
	ManualReview  bool            `json:"manual_review"`
	Breakdown     []string        `json:"breakdown,omitempty"`
}

func (PickupMetadata) MetadataSource() TransactionSource { return SourcePickupVerification }

// MilestoneMetadata records which milestone triggered a bonus.
type MilestoneMetadata struct {
	Key         string `json:"milestone"`
	Threshold   int64  `json:"threshold"`
	PickupCount int64  `json:"pickup_count"`
}

func (MilestoneMetadata) MetadataSource() TransactionSource { return SourceMilestone }

// AdjustmentMetadata covers manual bonus, penalty, referral and redemption entries.
type AdjustmentMetadata struct {
	Kind      TransactionSource `json:"kind"`
	Reason    string            `json:"reason,omitempty"`
	IssuedBy  *uuid.UUID        `json:"issued_by,omitempty"`
	Reference string            `json:"reference,omitempty"`
}

func (m AdjustmentMetadata) MetadataSource() TransactionSource { return m.Kind }

// EncodeMetadata serializes metadata for storage; nil yields nil.
func EncodeMetadata(m TransactionMetadata) ([]byte, error) {
	if m == nil {
		return nil, nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshal transaction metadata")
	}

	return raw, nil
}

// DecodeMetadata restores the payload shape selected by source.
func DecodeMetadata(source TransactionSource, raw []byte) (TransactionMetadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch source {
	case SourcePickupVerification:
		var m PickupMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrap(err, "unmarshal pickup metadata")
		}

		return m, nil
	case SourceMilestone:
		var m MilestoneMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrap(err, "unmarshal milestone metadata")
		}

		return m, nil
	default:
		var m AdjustmentMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrap(err, "unmarshal adjustment metadata")
		}
		if m.Kind == "" {
			m.Kind = source
		}

		return m, nil
	}
}

// TokenTransaction is one immutable ledger entry.
type TokenTransaction struct {
	ID           uuid.UUID           `json:"id"`
	CollectorID  uuid.UUID           `json:"collector_id"`
	Amount       int64               `json:"amount"`
	Type         TransactionType     `json:"type"`
	Source       TransactionSource   `json:"source"`
	PickupID     *uuid.UUID          `json:"pickup_id,omitempty"`
	Description  string              `json:"description"`
	Metadata     TransactionMetadata `json:"metadata,omitempty"`
	BalanceAfter int64               `json:"balance_after"`
	CreatedAt    time.Time           `json:"created_at"`
}

// TransactionFilter narrows a collector's history listing.
type TransactionFilter struct {
	CollectorID uuid.UUID
	Type        *TransactionType
	Source      *TransactionSource
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// AwardResult reports the outcome of a single award.
// Success is false, with no write, when the balance would go negative.
type AwardResult struct {
	Success       bool       `json:"success"`
	TransactionID *uuid.UUID `json:"transactionId,omitempty"`
	NewBalance    *int64     `json:"newBalance,omitempty"`
}

// AwardedMilestone is a milestone bonus granted during pickup processing.
type AwardedMilestone struct {
	Key           string    `json:"milestone"`
	Tokens        int64     `json:"tokens"`
	Description   string    `json:"description"`
	TransactionID uuid.UUID `json:"transactionId"`
}

// PickupRewardResult is returned by pickup token processing.
type PickupRewardResult struct {
	// CollectorID is the stored pickup's owner, the one actually paid.
	CollectorID       uuid.UUID          `json:"collectorId"`
	TokensAwarded     int64              `json:"tokensAwarded"`
	MilestonesAwarded []AwardedMilestone `json:"milestonesAwarded"`
	AlreadyProcessed  bool               `json:"alreadyProcessed"`
}

// CollectorProfile carries the cached balance; the ledger sum is authoritative.
type CollectorProfile struct {
	ID           uuid.UUID `json:"id"`
	DisplayName  string    `json:"display_name"`
	TokenBalance int64     `json:"token_balance"`
	UpdatedAt    time.Time `json:"updated_at"`
}
