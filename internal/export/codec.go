package export

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vovakirdan/jumpforge/internal/pattern"
)

// Parse error codes.
const (
	CodeBadBar      = "BAD_BAR"
	CodeBadGap      = "BAD_GAP"
	CodeBadHazard   = "BAD_HAZARD"
	CodeBadMetadata = "BAD_METADATA"
	CodeEmpty       = "EMPTY"
)

// Field grammars. These accept the same strings as the schema patterns on
// Obstacle.
var (
	barPattern = regexp.MustCompile(`^bar-([0-9]+)-([0-9]+)(?:-([0-9]+))?$`)
	gapPattern = regexp.MustCompile(`^gap-([0-9]+(?:\.[0-9]+)?)(?:-([a-z]+))?$`)
)

// ParseError reports a malformed document field.
type ParseError struct {
	Code  string
	Index int // obstacle index, -1 for document-level fields
	Field string
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("export: [%s] %s %q: %s", e.Code, e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("export: [%s] obstacle %d %s %q: %s", e.Code, e.Index, e.Field, e.Value, e.Msg)
}

// Encode converts a pattern into its document form. touchesGround comes from
// validation; when false, hazard-carrying obstacles are flagged as
// continuous hazards.
func Encode(p pattern.Pattern, touchesGround bool, g pattern.Grid) (Document, error) {
	doc := Document{
		Name:        p.Name,
		Description: p.Description,
		Obstacles:   make([]Obstacle, 0, len(p.Obstacles)),
		Metadata: Metadata{
			Type:   p.Meta.Type,
			Length: len(p.Obstacles),
			Rhythm: p.Meta.Rhythm,
		},
	}

	for i, ob := range p.Obstacles {
		bar, err := FormatBar(ob.Shape, g)
		if err != nil {
			return Document{}, fmt.Errorf("export: obstacle %d: %w", i, err)
		}
		enc := Obstacle{
			BarType:    bar,
			GapType:    FormatGap(ob.Gap, g),
			IsKillzone: ob.Killzone,
		}
		if ob.Gap.Hazard != pattern.HazardNone {
			if ob.Killzone {
				enc.HazardType = ob.Gap.Hazard.String()
			}
			enc.ContinuousHazard = !touchesGround
		}
		doc.Obstacles = append(doc.Obstacles, enc)
	}
	return doc, nil
}

// Decode parses a document back into a pattern.
func Decode(doc Document, g pattern.Grid) (pattern.Pattern, error) {
	if len(doc.Obstacles) == 0 {
		return pattern.Pattern{}, &ParseError{Code: CodeEmpty, Index: -1, Field: "obstacles", Msg: "no obstacles"}
	}
	if doc.Metadata.Length != len(doc.Obstacles) {
		return pattern.Pattern{}, &ParseError{
			Code:  CodeBadMetadata,
			Index: -1,
			Field: "metadata.length",
			Value: strconv.Itoa(doc.Metadata.Length),
			Msg:   fmt.Sprintf("document has %d obstacles", len(doc.Obstacles)),
		}
	}

	obstacles := make([]pattern.Obstacle, 0, len(doc.Obstacles))
	for i, enc := range doc.Obstacles {
		shape, err := ParseBar(enc.BarType, g)
		if err != nil {
			return pattern.Pattern{}, withIndex(err, i)
		}
		gap, err := ParseGap(enc.GapType, g)
		if err != nil {
			return pattern.Pattern{}, withIndex(err, i)
		}
		if enc.HazardType != "" {
			h, ok := pattern.ParseHazard(enc.HazardType)
			if !ok || h == pattern.HazardNone {
				return pattern.Pattern{}, &ParseError{
					Code: CodeBadHazard, Index: i, Field: "hazard_type", Value: enc.HazardType, Msg: "unknown hazard",
				}
			}
			if gap.Hazard != pattern.HazardNone && gap.Hazard != h {
				return pattern.Pattern{}, &ParseError{
					Code: CodeBadHazard, Index: i, Field: "hazard_type", Value: enc.HazardType,
					Msg: fmt.Sprintf("contradicts gap hazard %q", gap.Hazard.String()),
				}
			}
			gap.Hazard = h
		}
		if enc.IsKillzone && (shape.Width != 0 || gap.Hazard == pattern.HazardNone) {
			return pattern.Pattern{}, &ParseError{
				Code: CodeBadBar, Index: i, Field: "bar_type", Value: enc.BarType,
				Msg: "killzone must be bar-0-0 with a hazard",
			}
		}
		obstacles = append(obstacles, pattern.Obstacle{Shape: shape, Gap: gap, Killzone: enc.IsKillzone})
	}

	return pattern.Pattern{
		Name:        doc.Name,
		Description: doc.Description,
		Obstacles:   obstacles,
		Meta: pattern.Meta{
			Type:   doc.Metadata.Type,
			Length: doc.Metadata.Length,
			Rhythm: doc.Metadata.Rhythm,
		},
	}, nil
}

// FormatBar encodes a shape in grid units. Pixel sizes must be whole units.
func FormatBar(s pattern.Shape, g pattern.Grid) (string, error) {
	dims := []int{s.Width, s.Height}
	if s.Kind == pattern.KindFloating {
		dims = []int{s.Width, s.Floor, s.Ceiling}
	}
	parts := make([]string, 0, len(dims)+1)
	parts = append(parts, "bar")
	for _, px := range dims {
		if px%g.Unit != 0 {
			return "", fmt.Errorf("%dpx is not a multiple of the %dpx grid unit", px, g.Unit)
		}
		parts = append(parts, strconv.Itoa(px/g.Unit))
	}
	return strings.Join(parts, "-"), nil
}

// FormatGap encodes a gap as a multiplier of the gap unit, always with at
// least one decimal ("gap-2.0", "gap-1.75-lava").
func FormatGap(gap pattern.Gap, g pattern.Grid) string {
	s := "gap-" + FormatMultiplier(float64(gap.Distance)/float64(g.GapUnit))
	if gap.Hazard != pattern.HazardNone {
		s += "-" + gap.Hazard.String()
	}
	return s
}

// FormatMultiplier prints m in its shortest form, keeping ".0" on whole
// numbers.
func FormatMultiplier(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseBar decodes a bar_type string into a pixel shape.
func ParseBar(s string, g pattern.Grid) (pattern.Shape, error) {
	fail := func(msg string) (pattern.Shape, error) {
		return pattern.Shape{}, &ParseError{Code: CodeBadBar, Index: -1, Field: "bar_type", Value: s, Msg: msg}
	}

	if !strings.HasPrefix(s, "bar-") {
		return fail("missing bar- prefix")
	}
	match := barPattern.FindStringSubmatch(s)
	if match == nil {
		return fail("want bar-W-H or bar-W-FLOOR-CEILING in whole units")
	}

	parts := match[1:]
	if parts[2] == "" {
		parts = parts[:2]
	}
	dims := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fail(fmt.Sprintf("dimension %q is out of range", p))
		}
		dims[i] = v
	}

	if len(dims) == 2 {
		return g.Ground(dims[0], dims[1]), nil
	}
	if dims[2] <= dims[1] {
		return fail("ceiling must be above floor")
	}
	return g.Floating(dims[0], dims[1], dims[2]), nil
}

// ParseGap decodes a gap_type string into a pixel gap.
func ParseGap(s string, g pattern.Grid) (pattern.Gap, error) {
	fail := func(code, msg string) (pattern.Gap, error) {
		return pattern.Gap{}, &ParseError{Code: code, Index: -1, Field: "gap_type", Value: s, Msg: msg}
	}

	if !strings.HasPrefix(s, "gap-") {
		return fail(CodeBadGap, "missing gap- prefix")
	}
	match := gapPattern.FindStringSubmatch(s)
	if match == nil {
		return fail(CodeBadGap, "want gap-N.N or gap-N.N-HAZARD with a plain decimal multiplier")
	}
	mult, hazardName := match[1], match[2]

	m, err := strconv.ParseFloat(mult, 64)
	if err != nil || math.IsInf(m, 0) {
		return fail(CodeBadGap, fmt.Sprintf("multiplier %q is out of range", mult))
	}

	gap := pattern.Gap{Distance: int(math.Round(m * float64(g.GapUnit)))}
	if hazardName != "" {
		h, ok := pattern.ParseHazard(hazardName)
		if !ok || h == pattern.HazardNone {
			return fail(CodeBadHazard, fmt.Sprintf("unknown hazard %q", hazardName))
		}
		gap.Hazard = h
	}
	return gap, nil
}

// Slug builds the file stem for a pattern name and difficulty, e.g.
// "Wave Rider (Hard)" + "hard" -> "wave_rider_hard".
func Slug(name, difficulty string) string {
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	s := strings.ToLower(name)
	s = strings.NewReplacer(" ", "_", "-", "_", "(", "", ")", "").Replace(s)
	if difficulty != "" {
		s += "_" + strings.ToLower(difficulty)
	}
	return s
}

func withIndex(err error, index int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Index = index
	}
	return err
}
