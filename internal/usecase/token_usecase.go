package usecase

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
)

// AwardInput describes one ledger write.
type AwardInput struct {
	CollectorID uuid.UUID
	Amount      int64
	Source      entity.TransactionSource
	PickupID    *uuid.UUID
	Description string
	Metadata    entity.TransactionMetadata
}

// TransactionPage is one page of a collector's ledger history.
type TransactionPage struct {
	Transactions []*entity.TokenTransaction `json:"transactions"`
	Total        int64                      `json:"total"`
	Limit        int                        `json:"limit"`
	Offset       int                        `json:"offset"`
}

// LedgerExport is a rendered CSV of a collector's ledger.
type LedgerExport struct {
	Data     []byte
	Checksum string
	Rows     int
	// Location is set when the export was archived to the bucket
	Location string
}

// TokenUsecase is the collector token ledger.
type TokenUsecase interface {
	// AwardTokens appends one entry unless it would take the balance below zero,
	// in which case the result reports Success=false and nothing is written.
	AwardTokens(ctx context.Context, input *AwardInput) (*entity.AwardResult, error)

	// GetTokenBalance sums the ledger.
	GetTokenBalance(ctx context.Context, collectorID uuid.UUID) (int64, error)

	// ProcessPickupTokens scores a verified pickup and pays it at most once,
	// then grants any milestone the new verified count hits exactly.
	ProcessPickupTokens(ctx context.Context, pickupID, collectorID uuid.UUID) (*entity.PickupRewardResult, error)

	// RecalculateTokenBalance rebuilds the cached balance from the ledger.
	RecalculateTokenBalance(ctx context.Context, collectorID uuid.UUID) (int64, error)

	GetTransactionHistory(ctx context.Context, filter entity.TransactionFilter) (*TransactionPage, error)

	// GetNextMilestone returns nil once every milestone is behind the collector.
	GetNextMilestone(ctx context.Context, collectorID uuid.UUID) (*entity.MilestoneProgress, error)

	ExportTransactions(ctx context.Context, collectorID uuid.UUID) (*LedgerExport, error)

	// ArchiveTransactions writes the export to the configured bucket.
	ArchiveTransactions(ctx context.Context, collectorID uuid.UUID) (*LedgerExport, error)
}
