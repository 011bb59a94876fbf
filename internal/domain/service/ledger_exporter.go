package service

import (
	"context"

	"reclaim/internal/domain/entity"
)

// LedgerExporter renders ledger rows for download and archives snapshots.
type LedgerExporter interface {
	// EncodeCSV returns the CSV bytes and their hex SHA-256
	EncodeCSV(txs []*entity.TokenTransaction) (data []byte, checksum string, err error)

	// Archive stores data under key and returns where it was written
	Archive(ctx context.Context, key string, data []byte) (location string, err error)
}
