package measure

import (
	"fmt"
	"strings"
)

// PluralPolicy decides between singular and plural unit suffixes.
type PluralPolicy int

const (
	// PluralAsSource picks the singular form only when the magnitude is
	// greater than 1, so a magnitude of exactly 1 renders plural.
	PluralAsSource PluralPolicy = iota
	// PluralNatural picks the singular form only when the magnitude is 1.
	PluralNatural
)

// String returns the configuration name of the policy.
func (p PluralPolicy) String() string {
	switch p {
	case PluralAsSource:
		return "source"
	case PluralNatural:
		return "natural"
	default:
		return "unknown"
	}
}

// ParsePluralPolicy converts a configuration name to a policy.
func ParsePluralPolicy(name string) (PluralPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "source":
		return PluralAsSource, nil
	case "natural":
		return PluralNatural, nil
	default:
		return PluralAsSource, fmt.Errorf("unknown plural policy %q", name)
	}
}

func (p PluralPolicy) choose(raw float64, singular, plural string) string {
	if p == PluralNatural {
		if raw == 1 {
			return singular
		}
		return plural
	}
	if raw > 1 {
		return singular
	}
	return plural
}
