// Package measure implements tagged cooking quantities: a magnitude paired
// with a unit whose dimension and exact conversion factor are fixed at
// compile time. Quantities of different dimensions never combine.
package measure

import (
	"fmt"
	"strings"
)

// Unit selects one entry of the conversion table.
type Unit int

const (
	// UnitUnknown is the zero value and never produced by a constructor.
	UnitUnknown Unit = iota

	// Dry units measure mass in grams.
	DryGram
	DryTeaspoon
	DryTablespoon
	DryPinch
	DryCup

	// Wet units measure volume in millilitres.
	WetDash
	WetTeaspoon
	WetTablespoon
	WetOunce
	WetCup
	WetPint
	WetQuart
	WetGallon
)

type unitInfo struct {
	name     string
	aliases  []string
	dim      Dimension
	factor   Factor
	singular string
	plural   string
}

// Factors sourced from common culinary conversion tables. Do not edit.
var table = [...]unitInfo{
	UnitUnknown:   {name: "unknown", factor: Factor{0, 1}},
	DryGram:       {name: "gram", aliases: []string{"g", "grams"}, dim: Grams, factor: Factor{1, 1}, singular: "g", plural: "g"},
	DryTeaspoon:   {name: "teaspoon-dry", aliases: []string{"tsp-dry"}, dim: Grams, factor: Factor{5, 1}, singular: "tsp", plural: "tsp"},
	DryTablespoon: {name: "tablespoon-dry", aliases: []string{"tbsp-dry"}, dim: Grams, factor: Factor{15, 1}, singular: "tbsp", plural: "tbsp"},
	DryPinch:      {name: "pinch", aliases: []string{"pinches"}, dim: Grams, factor: Factor{5, 16}, singular: "pinch", plural: "pinches"},
	DryCup:        {name: "cup-dry", aliases: []string{"cups-dry"}, dim: Grams, factor: Factor{236588, 1000}, singular: "cup", plural: "cups"},
	WetDash:       {name: "dash", aliases: []string{"dashes"}, dim: Millilitres, factor: Factor{3696, 1000}, singular: "dash", plural: "dashes"},
	WetTeaspoon:   {name: "teaspoon-wet", aliases: []string{"tsp-wet"}, dim: Millilitres, factor: Factor{5, 1}, singular: "tsp", plural: "tsp"},
	WetTablespoon: {name: "tablespoon-wet", aliases: []string{"tbsp-wet"}, dim: Millilitres, factor: Factor{15, 1}, singular: "tbsp", plural: "tbsp"},
	WetOunce:      {name: "ounce", aliases: []string{"oz", "ounces"}, dim: Millilitres, factor: Factor{29573, 1000}, singular: "ounce", plural: "ounces"},
	WetCup:        {name: "cup-wet", aliases: []string{"cups-wet"}, dim: Millilitres, factor: Factor{236588, 1000}, singular: "cup", plural: "cups"},
	WetPint:       {name: "pint", aliases: []string{"pints"}, dim: Millilitres, factor: Factor{473176, 1000}, singular: "pint", plural: "pints"},
	WetQuart:      {name: "quart", aliases: []string{"quarts"}, dim: Millilitres, factor: Factor{946325, 1000}, singular: "quart", plural: "quarts"},
	WetGallon:     {name: "gallon", aliases: []string{"gallons"}, dim: Millilitres, factor: Factor{3785411, 1000}, singular: "gallon", plural: "gallons"},
}

// unitNames maps lowercase names and aliases to units.
var unitNames = func() map[string]Unit {
	m := make(map[string]Unit)
	for _, u := range Units() {
		info := table[u]
		m[info.name] = u
		for _, a := range info.aliases {
			m[a] = u
		}
	}
	return m
}()

// Units returns every valid unit in table order.
func Units() []Unit {
	out := make([]Unit, 0, len(table)-1)
	for u := DryGram; u <= WetGallon; u++ {
		out = append(out, u)
	}
	return out
}

// ParseUnit resolves a unit by canonical name or alias, ignoring case.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return UnitUnknown, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Valid reports whether u is an entry of the conversion table.
func (u Unit) Valid() bool {
	return u >= DryGram && u <= WetGallon
}

func (u Unit) info() unitInfo {
	if !u.Valid() {
		return table[UnitUnknown]
	}
	return table[u]
}

// String returns the canonical name, e.g. "teaspoon-dry".
func (u Unit) String() string { return u.info().name }

// Dimension returns the dimension the unit measures.
func (u Unit) Dimension() Dimension { return u.info().dim }

// Factor returns the unit's conversion factor to its canonical value.
func (u Unit) Factor() Factor { return u.info().factor }

// Suffix returns the abbreviation rendered after a magnitude of raw.
func (u Unit) Suffix(raw float64, policy PluralPolicy) string {
	info := u.info()
	return policy.choose(raw, info.singular, info.plural)
}
