package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "250", want: "250"},
		{value: "12345.5", want: "12,346"},
		{value: "12345.49", want: "12,345"},
		{value: "0", want: "0"},
		{value: "1000000", want: "1,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "50.00", FormatRatio(decimal.NewFromInt(50)))
	assert.Equal(t, "2.00", FormatRatio(decimal.NewFromInt(2)))
	assert.Equal(t, "0.33", FormatRatio(decimal.NewFromInt(1).Div(decimal.NewFromInt(3))))
	assert.Equal(t, "0.00", FormatRatio(decimal.Zero))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "5", FormatCount(5))
	assert.Equal(t, "1,250", FormatCount(1250))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	now := time.Date(2025, 7, 17, 2, 7, 45, 10, loc)

	start := StartOfDay(now)
	assert.Equal(t, time.Date(2025, 7, 17, 0, 0, 0, 0, loc), start)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-07-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("17/07/2025")
	assert.Error(t, err)
}

func TestGenerateBatchID(t *testing.T) {
	id, err := GenerateBatchID()
	require.NoError(t, err)
	assert.Len(t, id, batchIDSize)
}
