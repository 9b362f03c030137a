package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("10/03/2024")
	assert.Error(t, err)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 23, 59, 1, 5, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), TruncateToDay(in))
}

func TestNewEntityID(t *testing.T) {
	id := NewEntityID()
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, NewEntityID())
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestRoundWithTwoDecimalPlace_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestRatios(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(10, 4))
	assert.Equal(t, 25.0, Percentage(1, 4))
	assert.Equal(t, 0.0, PercentChange(10, 0))
	assert.Equal(t, 100.0, PercentChange(20, 10))
	assert.Equal(t, -50.0, PercentChange(5, 10))
}
