// Package model holds the GORM table structs. Primary keys are UUIDv7 assigned
// on create so rows sort by insertion order without a database extension.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newID(current uuid.UUID) (uuid.UUID, error) {
	if current != uuid.Nil {
		return current, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "generate uuid v7")
	}

	return id, nil
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&CollectorProfileModel{},
		&PickupModel{},
		&TokenTransactionModel{},
		&CollectorDeviceModel{},
	}
}
