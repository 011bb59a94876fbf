// Package export writes ledger CSV files and archives them to blob storage.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"reclaim/internal/domain/entity"
	"reclaim/internal/util"

	"github.com/pkg/errors"
)

var csvHeader = []string{"id", "created_at", "type", "source", "amount", "balance_after", "pickup_id", "description"}

// TransactionsCSV serialises rows in the given order and checksums the payload.
func TransactionsCSV(txs []*entity.TokenTransaction) ([]byte, string, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, "", errors.WithStack(err)
	}

	for _, tx := range txs {
		if tx == nil {
			continue
		}

		pickupID := ""
		if tx.PickupID != nil {
			pickupID = tx.PickupID.String()
		}

		record := []string{
			tx.ID.String(),
			tx.CreatedAt.UTC().Format(time.RFC3339Nano),
			string(tx.Type),
			string(tx.Source),
			strconv.FormatInt(tx.Amount, 10),
			strconv.FormatInt(tx.BalanceAfter, 10),
			pickupID,
			tx.Description,
		}
		if err := writer.Write(record); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	data := buffer.Bytes()
	checksum, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	return data, checksum, nil
}
