package repository

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTransactionNotFound is returned when no ledger entry matches.
	ErrTransactionNotFound = errors.New("token transaction not found")
	// ErrDuplicateTransaction is returned when the (collector, pickup, source) key already exists.
	ErrDuplicateTransaction = errors.New("token transaction already exists")
)

// TokenTransactionRepository is the append-only ledger store.
type TokenTransactionRepository interface {
	// Create appends one entry. It never updates existing rows.
	Create(ctx context.Context, tx *entity.TokenTransaction) error

	// FindByPickup returns the entry for (collector, pickup, source).
	FindByPickup(ctx context.Context, collectorID, pickupID uuid.UUID, source entity.TransactionSource) (*entity.TokenTransaction, error)

	// SumByCollector returns the sum of all amounts for a collector, 0 when none.
	SumByCollector(ctx context.Context, collectorID uuid.UUID) (int64, error)

	// List returns a page of entries newest first, plus the unpaged total.
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TokenTransaction, int64, error)

	// ListAll returns every entry for a collector oldest first.
	ListAll(ctx context.Context, collectorID uuid.UUID) ([]*entity.TokenTransaction, error)
}
