package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// percentPrecision is the stored precision of allocation percentages.
// Six decimals let an even split survive round-tripping (100/4 = 25.000000,
// 100/3 = 33.333333).
const percentPrecision = 6

var hundred = decimal.NewFromInt(100)

// Percent is a value object for an allocation percentage.
// It is immutable and always held at six-decimal precision.
type Percent struct {
	value decimal.Decimal
}

// NewPercentFromString parses a percentage from its decimal-string form
func NewPercentFromString(value string) (Percent, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage string: %w", err)
	}
	return NewPercent(d), nil
}

// NewPercent creates a Percent, normalising to six decimals
func NewPercent(value decimal.Decimal) Percent {
	return Percent{value: value.Round(percentPrecision)}
}

// ZeroPercent returns the zero percentage
func ZeroPercent() Percent {
	return Percent{value: decimal.Zero}
}

// FullPercent returns 100%
func FullPercent() Percent {
	return Percent{value: hundred}
}

// Decimal returns the underlying decimal value
func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

// Add returns the sum of two percentages
func (p Percent) Add(other Percent) Percent {
	return Percent{value: p.value.Add(other.value)}
}

// Of computes the share this percentage takes of the given Money, with
// banker's rounding to two decimals. This is the only derivation path for
// allocation amounts, so repeated save/reload cycles cannot drift.
func (p Percent) Of(m Money) Money {
	return m.CalculatePercentage(p.value).RoundBank(2)
}

// IsFull returns true if the percentage is exactly 100
func (p Percent) IsFull() bool {
	return p.value.Equal(hundred)
}

// IsZero returns true if the percentage is zero
func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// IsNegative returns true if the percentage is negative
func (p Percent) IsNegative() bool {
	return p.value.IsNegative()
}

// Exceeds returns true if the percentage is greater than the other
func (p Percent) Exceeds(other Percent) bool {
	return p.value.GreaterThan(other.value)
}

// Equals returns true if both percentages are numerically equal
func (p Percent) Equals(other Percent) bool {
	return p.value.Equal(other.value)
}

// String returns the percentage at its stored six-decimal precision
func (p Percent) String() string {
	return p.value.StringFixed(percentPrecision)
}

// Value implements driver.Valuer for database storage
func (p Percent) Value() (driver.Value, error) {
	return p.value.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (p *Percent) Scan(value any) error {
	if value == nil {
		p.value = decimal.Zero
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Percent", value)
	}

	d, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	p.value = d.Round(percentPrecision)
	return nil
}
