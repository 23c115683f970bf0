// Package recipe defines plain recipe records built on measured
// ingredient amounts, and a read-only catalog of sample recipes.
package recipe

import (
	"fmt"

	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

// Recipe is a complete cooking recipe.
type Recipe struct {
	ID          string
	Title       string
	Story       string
	Steps       []Step
	CoverPhoto  Photo
	Ingredients []Ingredient
	Tags        []string
}

// Step is a single instruction in a recipe.
type Step struct {
	Position uint8 // 0-255, order within the recipe
	Content  string
	Images   []Photo
}

// Photo references an image.
type Photo struct {
	URI     string
	Caption string
}

// Ingredient pairs a name with a measured amount.
type Ingredient struct {
	Name     string
	Amount   measure.Quantity
	Optional bool
}

// Totals holds the canonical sums of a recipe's ingredients.
type Totals struct {
	Grams       float64
	Millilitres float64
}

// Totals sums every measured ingredient into canonical grams and
// millilitres. Ingredients with a zero Amount are ignored.
func (r *Recipe) Totals() (Totals, error) {
	var mass, volume []measure.Quantity
	for _, ing := range r.Ingredients {
		switch {
		case ing.Amount.IsZero():
		case ing.Amount.Dimension() == measure.Grams:
			mass = append(mass, ing.Amount)
		case ing.Amount.Dimension() == measure.Millilitres:
			volume = append(volume, ing.Amount)
		default:
			return Totals{}, fmt.Errorf("%s: %w: no total for %s", ing.Name, measure.ErrDimensionMismatch, ing.Amount.Dimension())
		}
	}

	var t Totals
	if len(mass) > 0 {
		sum, err := measure.Sum(mass...)
		if err != nil {
			return Totals{}, fmt.Errorf("summing mass: %w", err)
		}
		t.Grams = sum.Canonical()
	}
	if len(volume) > 0 {
		sum, err := measure.Sum(volume...)
		if err != nil {
			return Totals{}, fmt.Errorf("summing volume: %w", err)
		}
		t.Millilitres = sum.Canonical()
	}
	return t, nil
}

// Scale returns a copy of r with every ingredient amount multiplied by k.
func (r *Recipe) Scale(k float64) (*Recipe, error) {
	out := r.clone()
	for i, ing := range out.Ingredients {
		if ing.Amount.IsZero() {
			continue
		}
		scaled, err := ing.Amount.Scale(k)
		if err != nil {
			return nil, fmt.Errorf("scaling %s: %w", ing.Name, err)
		}
		out.Ingredients[i].Amount = scaled
	}
	return out, nil
}

func (r *Recipe) clone() *Recipe {
	out := *r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Tags = append([]string(nil), r.Tags...)
	out.Steps = make([]Step, len(r.Steps))
	for i, s := range r.Steps {
		s.Images = append([]Photo(nil), s.Images...)
		out.Steps[i] = s
	}
	return &out
}
