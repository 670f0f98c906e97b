package tracker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney reads an amount in major units (e.g. "172.50") in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$1,725.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) AsFloat() float64     { return m.value.InexactFloat64() }

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// ratio returns m/n, or zero when n is zero.
func (m Money) ratio(n Money) decimal.Decimal {
	if n.value.IsZero() {
		return decimal.Zero
	}
	return m.value.Div(n.value)
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
