package measure

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Factor is an exact rational multiplier from a named unit to its
// canonical dimension value. Den is always positive.
type Factor struct {
	Num int64
	Den int64
}

// Apply maps a raw magnitude to its canonical value as x * Num / Den.
func (f Factor) Apply(x float64) float64 {
	return x * float64(f.Num) / float64(f.Den)
}

// Invert maps a canonical value back to a raw magnitude.
func (f Factor) Invert(c float64) float64 {
	return c * float64(f.Den) / float64(f.Num)
}

// Decimal returns the factor as an exact decimal.
func (f Factor) Decimal() decimal.Decimal {
	return decimal.NewFromInt(f.Num).Div(decimal.NewFromInt(f.Den))
}

// String renders the factor as "num/den".
func (f Factor) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
