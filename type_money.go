package puppyshop

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount. Arithmetic is exact; the wire format is
// a plain decimal fixed at two fractional digits.
//
// A Money decoded from a non-numeric field keeps the original text in raw and
// reports !IsValid; aggregations skip such rows and saves write the original
// text back unchanged.
type Money struct {
	value decimal.Decimal
	raw   string
}

// M builds a Money from a numeric constant. For tests and fixtures.
func M[T float32 | float64 | int | int32 | int64](value T) Money {
	switch v := any(value).(type) {
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	}
	panic("unreachable")
}

// ParseMoney parses a decimal amount such as "100" or "99.95".
func ParseMoney(str string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", str)}
	}
	return Money{value: v}, nil
}

// String returns the plain two-digit wire representation, e.g. "300.00".
// A non-numeric decoded amount renders as its original text.
func (m Money) String() string {
	if m.raw != "" {
		return m.raw
	}
	return m.value.StringFixed(2)
}

// IsValid reports whether the amount was numeric. Only decoded amounts can be
// invalid; constructed ones always are valid.
func (m Money) IsValid() bool { return m.raw == "" }

// Display formats the amount with the symbol of the given ISO currency code,
// falling back to the plain representation for unknown codes.
func (m Money) Display(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return m.String()
	}
	units := m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(units)
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }

// Add returns m + n.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }

// MulQuantity returns m * q rounded to two fractional digits.
func (m Money) MulQuantity(q int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(q))).Round(2)}
}

// GreaterThan reports whether m > n.
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// MarshalCSV implements gocsv marshalling for Money.
func (m Money) MarshalCSV() (string, error) { return m.String(), nil }

// UnmarshalCSV implements gocsv unmarshalling for Money. Lenient like Date:
// a non-numeric field decodes to an invalid amount rather than failing the
// whole file.
func (m *Money) UnmarshalCSV(field string) error {
	parsed, err := ParseMoney(field)
	if err != nil {
		*m = Money{raw: field}
		return nil
	}
	*m = parsed
	return nil
}
