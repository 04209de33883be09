/*
Package generic provides the domain-agnostic building blocks of the payroll engine.

PURPOSE:
  Money, calendar dates and date ranges show up in every payroll rule.
  Keeping them here means the payroll package only states the rules and
  never deals with float rounding or timezone arithmetic.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity backed by decimal.Decimal
  - EntityID: Type-safe identifier for stored records

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Display rounding only: Amounts are never rounded mid-computation
  3. Single currency: There is no currency field, amounts are plain money

USAGE:
  rate := generic.MustAmount("1000")
  total := rate.Mul(decimal.NewFromInt(2)).Add(rate)
  fmt.Println(total.StringFixed()) // "3000.00"

SEE ALSO:
  - time.go: Calendar date handling
  - period.go: Inclusive date ranges
  - errors.go: Error taxonomy
*/
package generic

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Monetary quantity
// =============================================================================

// DisplayPlaces is the number of fractional digits used when an amount is shown.
const DisplayPlaces = 2

type Amount struct {
	Value decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{Value: decimal.NewFromFloat(value)}
}

func NewAmountFromInt(value int64) Amount {
	return Amount{Value: decimal.NewFromInt(value)}
}

// ParseAmount parses a decimal string such as "1000" or "812.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &ValidationError{Field: "amount", Message: fmt.Sprintf("invalid amount %q", s)}
	}
	return Amount{Value: d}, nil
}

// MustAmount is ParseAmount for literals known to be valid.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func ZeroAmount() Amount { return Amount{Value: decimal.Zero} }

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value)} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s)} }
func (a Amount) MulInt(n int64) Amount        { return Amount{Value: a.Value.Mul(decimal.NewFromInt(n))} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) Equal(b Amount) bool          { return a.Value.Equal(b.Value) }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }

// StringFixed renders the amount with DisplayPlaces fractional digits.
func (a Amount) StringFixed() string { return a.Value.StringFixed(DisplayPlaces) }

// String renders the exact stored value, used for persistence.
func (a Amount) String() string { return a.Value.String() }

// Float64 is for JSON responses that must stay numeric for the frontend.
// The value is rounded to DisplayPlaces first.
func (a Amount) Float64() float64 {
	f, _ := a.Value.Round(DisplayPlaces).Float64()
	return f
}

// MarshalJSON writes the amount as a JSON number rounded for display.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

// EntityID is the store-assigned identifier of a record.
type EntityID int64

// ParseEntityID parses a path parameter into an EntityID.
func ParseEntityID(s string) (EntityID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, &ValidationError{Field: "id", Message: fmt.Sprintf("invalid id %q", s)}
	}
	return EntityID(n), nil
}

func (id EntityID) String() string { return strconv.FormatInt(int64(id), 10) }
