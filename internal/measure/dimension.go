package measure

import "fmt"

// Dimension identifies a physical quantity space by its exponents of
// millilitres, grams and countable items. Every unit in the table has
// exactly one exponent set to 1.
type Dimension struct {
	ML   int
	G    int
	Each int
}

// Base dimensions.
var (
	Millilitres = Dimension{ML: 1}
	Grams       = Dimension{G: 1}
	// Each is reserved for countable ingredients; no unit uses it yet.
	Each = Dimension{Each: 1}
)

// Compatible reports whether quantities of d and o may be combined.
func (d Dimension) Compatible(o Dimension) bool {
	return d == o
}

// String renders the dimension as "mL^<e> g^<e> ea.^<e>".
func (d Dimension) String() string {
	return fmt.Sprintf("mL^%d g^%d ea.^%d", d.ML, d.G, d.Each)
}
