package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercent(t *testing.T) {
	t.Run("normalizes to six decimals", func(t *testing.T) {
		p := NewPercent(decimal.RequireFromString("33.3333333333"))
		assert.Equal(t, "33.333333", p.String())
	})

	t.Run("parses from string", func(t *testing.T) {
		p, err := NewPercentFromString("25")
		require.NoError(t, err)
		assert.Equal(t, "25.000000", p.String())

		_, err = NewPercentFromString("a quarter")
		assert.Error(t, err)
	})

	t.Run("even splits survive round-tripping", func(t *testing.T) {
		quarter := NewPercent(decimal.NewFromInt(100).Div(decimal.NewFromInt(4)))
		sum := ZeroPercent()
		for i := 0; i < 4; i++ {
			sum = sum.Add(quarter)
		}
		assert.True(t, sum.IsFull())
	})
}

func TestPercent_Of(t *testing.T) {
	t.Run("derives the share with banker's rounding to two decimals", func(t *testing.T) {
		third := NewPercent(decimal.RequireFromString("33.333333"))
		parent := MoneyOf(decimal.RequireFromString("100.00"), EUR)

		share := third.Of(parent)
		assert.Equal(t, "33.33", share.StringFixed(2))
		assert.Equal(t, EUR, share.Currency())
	})

	t.Run("full percentage returns the whole amount", func(t *testing.T) {
		parent := MoneyOf(decimal.RequireFromString("1234.56"), USD)
		assert.Equal(t, "1234.56", FullPercent().Of(parent).StringFixed(2))
	})

	t.Run("zero percentage returns zero", func(t *testing.T) {
		parent := MoneyOf(decimal.RequireFromString("999.99"), EUR)
		assert.True(t, ZeroPercent().Of(parent).IsZero())
	})
}

func TestPercent_Predicates(t *testing.T) {
	full := FullPercent()
	half := NewPercent(decimal.NewFromInt(50))

	assert.True(t, full.IsFull())
	assert.False(t, half.IsFull())
	assert.True(t, ZeroPercent().IsZero())
	assert.True(t, NewPercent(decimal.NewFromInt(-1)).IsNegative())
	assert.True(t, full.Exceeds(half))
	assert.False(t, half.Exceeds(full))
	assert.True(t, half.Add(half).Equals(full))
}

func TestPercent_Scan(t *testing.T) {
	var p Percent
	require.NoError(t, p.Scan("66.666667"))
	assert.Equal(t, "66.666667", p.String())

	var zero Percent
	require.NoError(t, zero.Scan(nil))
	assert.True(t, zero.IsZero())

	assert.Error(t, p.Scan(66.6))
}
