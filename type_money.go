package fenn

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// persist decimals as plain JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the pass-through currency reported by the position source.
// There is no conversion: values are aggregated in whatever currency the
// source reports, which in practice is USD.
const DefaultCurrency = "USD"

// Money represents a monetary value kept in exact decimal form.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	c := m.cur
	if c == "" {
		c = DefaultCurrency
	}
	return *money.New(0, c).Currency()
}

// String returns the formatted representation, e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n as a Percent, and 0 when n is zero so that allocation
// never divides by zero on an empty portfolio.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Shift(2).InexactFloat64())
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat converts to float64 for the presentation boundary only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON persists the amount as a plain JSON number. The currency is
// pass-through and restored as DefaultCurrency on load.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	if err := m.value.UnmarshalJSON(b); err != nil {
		return err
	}
	if m.cur == "" {
		m.cur = DefaultCurrency
	}
	return nil
}
