package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Strategy string  `validate:"strategy"`
	Category string  `validate:"category"`
	Weight   float64 `validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Category: "PET", Weight: 1}))
	require.NoError(t, v.Validate(&sample{Strategy: "weighted", Category: "HDPE", Weight: 1}))

	err := v.Validate(&sample{Strategy: "fastest", Category: "glass", Weight: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Strategy failed on strategy")
	assert.Contains(t, err.Error(), "Category failed on category")
	assert.Contains(t, err.Error(), "Weight failed on gt=0")
}
