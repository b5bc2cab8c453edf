package pattern

import (
	"fmt"
	"strings"
)

// MinWidthUnits is the narrowest bar a scaled pattern may contain.
const MinWidthUnits = 2

// Level is a named difficulty with its width multiplier.
type Level struct {
	Name   string // lowercase, e.g. "hard"
	Factor float64
}

// DefaultLevels are the stock difficulty tiers. Wider bars are easier.
func DefaultLevels() []Level {
	return []Level{
		{Name: "hard", Factor: 1.0},
		{Name: "medium", Factor: 1.15},
		{Name: "easy", Factor: 1.25},
	}
}

// Variant is a pattern rebuilt for one difficulty level.
type Variant struct {
	Level   Level
	Pattern Pattern
}

// ScaleWidths widens every non-killzone obstacle by factor, in whole grid
// units, never below MinWidthUnits. A partial unit counts as a whole one, so
// a factor of at least 1 never narrows a bar. Gaps, heights and hazards are
// unchanged.
func ScaleWidths(p Pattern, factor float64, g Grid) Pattern {
	out := p.Clone()
	for i, ob := range out.Obstacles {
		if ob.Killzone {
			continue
		}
		units := (ob.Shape.Width + g.Unit - 1) / g.Unit
		scaled := int(float64(units) * factor)
		if scaled < MinWidthUnits {
			scaled = MinWidthUnits
		}
		out.Obstacles[i].Shape.Width = scaled * g.Unit
	}
	return out
}

// DifficultyVariants produces one width-scaled copy of base per level. Each
// variant's name gets the level in parentheses, e.g. "Wave Rider (Hard)".
func DifficultyVariants(base Pattern, levels []Level, g Grid) []Variant {
	variants := make([]Variant, 0, len(levels))
	for _, lvl := range levels {
		p := ScaleWidths(base, lvl.Factor, g)
		p.Name = fmt.Sprintf("%s (%s)", base.Name, titleCase(lvl.Name))
		variants = append(variants, Variant{Level: lvl, Pattern: p})
	}
	return variants
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
