// Package display renders unit tables and recipes for the terminal.
//
// Styling comes from lipgloss, which drops colors automatically when the
// output is not a terminal, so rendered text stays greppable.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottomeasure/internal/measure"
	"github.com/hammamikhairi/ottomeasure/internal/recipe"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// Header — soft mint for titles and table headers.
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Primary text — light zinc for rows and instructions.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for stories, hints, metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))
)

const unitRow = "%-16s %-16s %-14s %s"

// RenderUnits returns the conversion table, one unit per line.
func RenderUnits(units []measure.Unit) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(unitRow, "UNIT", "DIMENSION", "FACTOR", "SUFFIX")))
	b.WriteByte('\n')
	for _, u := range units {
		suffix := u.Suffix(2, measure.PluralNatural)
		if one := u.Suffix(1, measure.PluralNatural); one != suffix {
			suffix = one + "/" + suffix
		}
		b.WriteString(primaryStyle.Render(fmt.Sprintf(unitRow, u, u.Dimension(), u.Factor(), suffix)))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderSummaries returns one line per recipe summary.
func RenderSummaries(list []recipe.Summary) string {
	var b strings.Builder
	for _, s := range list {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("%-22s %s", s.ID, s.Title)))
		if len(s.Tags) > 0 {
			b.WriteString(" " + secondaryStyle.Render("["+strings.Join(s.Tags, ", ")+"]"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderRecipe returns a recipe with measured ingredients, steps and
// canonical totals.
func RenderRecipe(r *recipe.Recipe, t recipe.Totals, policy measure.PluralPolicy) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(r.Title))
	b.WriteByte('\n')
	if r.Story != "" {
		b.WriteString(secondaryStyle.Render(r.Story))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(headerStyle.Render("Ingredients"))
	b.WriteByte('\n')
	for _, ing := range r.Ingredients {
		b.WriteString(primaryStyle.Render("  " + ingredientLine(ing, policy)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(headerStyle.Render("Steps"))
	b.WriteByte('\n')
	for _, s := range r.Steps {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %d. %s", int(s.Position)+1, s.Content)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("Total: %s g, %s mL",
		measure.FormatNumber(t.Grams), measure.FormatNumber(t.Millilitres))))
	b.WriteByte('\n')
	return b.String()
}

func ingredientLine(ing recipe.Ingredient, policy measure.PluralPolicy) string {
	var line string
	if ing.Amount.IsZero() {
		line = ing.Name
	} else {
		line = fmt.Sprintf("%s %s (%s)", ing.Amount.Format(policy), ing.Name, ing.Amount.Describe())
	}
	if ing.Optional {
		line += " (optional)"
	}
	return line
}
