package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServingUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected ServingUnit
		wantErr  bool
	}{
		{input: "g", expected: Grams},
		{input: "ml", expected: Milliliters},
		{input: "G", wantErr: true},
		{input: "kg", wantErr: true},
		{input: " g", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, err := ParseServingUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidServingUnit))
				assert.Equal(t, KindValidation, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, unit)
			assert.Equal(t, tt.input, unit.String())
		})
	}
}
