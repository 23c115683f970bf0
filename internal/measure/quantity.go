package measure

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity is an immutable magnitude tagged with a unit.
type Quantity struct {
	raw  float64
	unit Unit
}

// New creates a quantity of raw in unit u.
func New(raw float64, u Unit) (Quantity, error) {
	if !u.Valid() {
		return Quantity{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidMagnitude, raw)
	}
	return Quantity{raw: raw, unit: u}, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(raw float64, u Unit) Quantity {
	q, err := New(raw, u)
	if err != nil {
		panic(fmt.Sprintf("measure: %v", err))
	}
	return q
}

// Parse creates a quantity from a unit name or alias.
func Parse(raw float64, unitName string) (Quantity, error) {
	u, err := ParseUnit(unitName)
	if err != nil {
		return Quantity{}, err
	}
	return New(raw, u)
}

// FromCanonical creates a quantity in unit u whose canonical value is c.
func FromCanonical(c float64, u Unit) (Quantity, error) {
	if !u.Valid() {
		return Quantity{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	return New(u.Factor().Invert(c), u)
}

// Raw returns the magnitude as given at construction.
func (q Quantity) Raw() float64 { return q.raw }

// Unit returns the unit selector.
func (q Quantity) Unit() Unit { return q.unit }

// Dimension returns the dimension of the quantity's unit.
func (q Quantity) Dimension() Dimension { return q.unit.Dimension() }

// IsZero reports whether q is the zero Quantity.
func (q Quantity) IsZero() bool { return q.unit == UnitUnknown }

// Canonical returns the base-unit value raw * num / den.
func (q Quantity) Canonical() float64 {
	return q.unit.Factor().Apply(q.raw)
}

// Exact returns the canonical value using exact decimal arithmetic.
func (q Quantity) Exact() decimal.Decimal {
	f := q.unit.Factor()
	return decimal.NewFromFloat(q.raw).
		Mul(decimal.NewFromInt(f.Num)).
		Div(decimal.NewFromInt(f.Den))
}

// String renders the compact form, e.g. "2tsp".
func (q Quantity) String() string {
	return q.Format(PluralAsSource)
}

// Format renders the compact form with the given pluralization policy.
func (q Quantity) Format(policy PluralPolicy) string {
	return FormatNumber(q.raw) + q.unit.Suffix(q.raw, policy)
}

// Describe renders the canonical value followed by the dimension,
// e.g. "30 mL^1 g^0 ea.^0".
func (q Quantity) Describe() string {
	return FormatNumber(q.Canonical()) + " " + q.Dimension().String()
}

// Add returns q + o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if err := q.compatible(o); err != nil {
		return Quantity{}, err
	}
	if q.unit == o.unit {
		return New(q.raw+o.raw, q.unit)
	}
	return FromCanonical(q.Canonical()+o.Canonical(), q.unit)
}

// To converts q into unit u of the same dimension.
func (q Quantity) To(u Unit) (Quantity, error) {
	if !u.Valid() {
		return Quantity{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	if u == q.unit {
		return q, nil
	}
	if !q.Dimension().Compatible(u.Dimension()) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrDimensionMismatch, q.unit, q.Dimension(), u, u.Dimension())
	}
	return FromCanonical(q.Canonical(), u)
}

// Scale multiplies the magnitude by k.
func (q Quantity) Scale(k float64) (Quantity, error) {
	return New(q.raw*k, q.unit)
}

// Sum folds qs with Add. The result is in the first quantity's unit.
func Sum(qs ...Quantity) (Quantity, error) {
	if len(qs) == 0 {
		return Quantity{}, fmt.Errorf("%w: nothing to sum", ErrInvalidMagnitude)
	}
	acc := qs[0]
	for _, q := range qs[1:] {
		var err error
		if acc, err = acc.Add(q); err != nil {
			return Quantity{}, err
		}
	}
	return acc, nil
}

func (q Quantity) compatible(o Quantity) error {
	if q.IsZero() || o.IsZero() {
		return fmt.Errorf("%w: zero quantity", ErrUnknownUnit)
	}
	if !q.Dimension().Compatible(o.Dimension()) {
		return fmt.Errorf("%w: %s (%s) and %s (%s)",
			ErrDimensionMismatch, q.unit, q.Dimension(), o.unit, o.Dimension())
	}
	return nil
}

// FormatNumber renders v with six significant digits and trailing zeros
// trimmed, e.g. 118.294, 0.3125, 1e+06.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
