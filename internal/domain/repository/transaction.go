package repository

import "context"

// TransactionManager runs use case work inside a single database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// All repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewTokenTransactionRepository() TokenTransactionRepository
	NewCollectorRepository() CollectorRepository
	NewPickupRepository() PickupRepository
}
