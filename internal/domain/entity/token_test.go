package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSource_TransactionType(t *testing.T) {
	tests := []struct {
		source TransactionSource
		want   TransactionType
	}{
		{SourcePickupVerification, TransactionTypeEarned},
		{SourceMilestone, TransactionTypeBonus},
		{SourceReferral, TransactionTypeEarned},
		{SourceRedemption, TransactionTypeEarned},
		{SourceBonus, TransactionTypeBonus},
		{SourcePenalty, TransactionTypeEarned},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.TransactionType())
		})
	}
}
