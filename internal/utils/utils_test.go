package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateStockCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{
			name: "simple ticker",
			code: "AAPL",
		},
		{
			name: "ticker with suffix",
			code: "BRK.B",
		},
		{
			name:    "empty code",
			code:    "",
			wantErr: ErrEmptyCode,
		},
		{
			name:    "whitespace only",
			code:    "   ",
			wantErr: ErrEmptyCode,
		},
		{
			name:    "embedded comma",
			code:    "AA,PL",
			wantErr: ErrDelimiterCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStockCode(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_ValidateStockCode_ControlCharacters(t *testing.T) {
	assert.Error(t, ValidateStockCode("AA\nPL"))
	assert.Error(t, ValidateStockCode("AA\x00PL"))
}
