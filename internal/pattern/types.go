// Package pattern holds the obstacle pattern model, the assembler that turns
// generator sequences into patterns, difficulty scaling and the validator
// that replays every transition against the physics model.
package pattern

import "fmt"

// Grid converts generator units into pixels.
type Grid struct {
	Unit    int // pixels per bar width/height unit
	GapUnit int // pixels per gap multiplier of 1.0
}

// DefaultGrid is the stock 30px bar unit and 100px gap unit.
func DefaultGrid() Grid {
	return Grid{Unit: 30, GapUnit: 100}
}

// HazardKind names what fills a gap.
type HazardKind uint8

const (
	HazardNone HazardKind = iota
	HazardSpikes
	HazardSaw
	HazardLava
	HazardElectric
	HazardLaser
	HazardPoison
)

var hazardNames = map[HazardKind]string{
	HazardNone:     "none",
	HazardSpikes:   "spikes",
	HazardSaw:      "saw",
	HazardLava:     "lava",
	HazardElectric: "electric",
	HazardLaser:    "laser",
	HazardPoison:   "poison",
}

func (h HazardKind) String() string {
	if name, ok := hazardNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HazardKind(%d)", uint8(h))
}

// Hazards returns every real hazard kind in declaration order.
func Hazards() []HazardKind {
	return []HazardKind{HazardSpikes, HazardSaw, HazardLava, HazardElectric, HazardLaser, HazardPoison}
}

// ParseHazard looks up a hazard by its lowercase name.
func ParseHazard(s string) (HazardKind, bool) {
	for h, name := range hazardNames {
		if name == s {
			return h, true
		}
	}
	return HazardNone, false
}

// ShapeKind distinguishes floor-rooted bars from floating platforms.
type ShapeKind uint8

const (
	KindGround ShapeKind = iota
	KindFloating
)

func (k ShapeKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFloating:
		return "floating"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is an obstacle body in pixels. Ground shapes use Height; floating
// shapes span [Floor, Ceiling] and leave open space beneath them.
type Shape struct {
	Kind    ShapeKind
	Width   int
	Height  int
	Floor   int
	Ceiling int
}

// GroundShape is a bar rising from the floor.
func GroundShape(width, height int) Shape {
	return Shape{Kind: KindGround, Width: width, Height: height}
}

// FloatingShape is a platform hanging between floor and ceiling.
func FloatingShape(width, floor, ceiling int) Shape {
	return Shape{Kind: KindFloating, Width: width, Floor: floor, Ceiling: ceiling}
}

// Ground builds a floor-rooted bar from grid units.
func (g Grid) Ground(widthUnits, heightUnits int) Shape {
	return GroundShape(widthUnits*g.Unit, heightUnits*g.Unit)
}

// Floating builds a floating platform from grid units.
func (g Grid) Floating(widthUnits, floorUnits, ceilingUnits int) Shape {
	return FloatingShape(widthUnits*g.Unit, floorUnits*g.Unit, ceilingUnits*g.Unit)
}

// Surface returns the elevation the runner lands on.
func (s Shape) Surface() int {
	if s.Kind == KindFloating {
		return s.Ceiling
	}
	return s.Height
}

// Gap is the space after an obstacle.
type Gap struct {
	Distance int
	Hazard   HazardKind
}

// Obstacle is one shape plus the gap that follows it. A killzone is a
// zero-width marker whose gap holds a hazard the runner must jump over from
// the ground.
type Obstacle struct {
	Shape    Shape
	Gap      Gap
	Killzone bool
}

// Killzone creates a hazard marker spanning distance pixels.
func Killzone(distance int, hazard HazardKind) Obstacle {
	return Obstacle{
		Shape:    GroundShape(0, 0),
		Gap:      Gap{Distance: distance, Hazard: hazard},
		Killzone: true,
	}
}

// Meta describes a pattern for listings and export.
type Meta struct {
	Type   string // "bar", "platform" or "mixed"
	Length int
	Rhythm string
}

// Pattern is an ordered obstacle course.
type Pattern struct {
	Name        string
	Description string
	Obstacles   []Obstacle
	Meta        Meta
}

// Positions returns the left edge of every obstacle, starting at 0.
func (p Pattern) Positions() []int {
	xs := make([]int, len(p.Obstacles))
	x := 0
	for i, ob := range p.Obstacles {
		xs[i] = x
		x += ob.Shape.Width + ob.Gap.Distance
	}
	return xs
}

// Span returns the total length of the pattern in pixels.
func (p Pattern) Span() int {
	total := 0
	for _, ob := range p.Obstacles {
		total += ob.Shape.Width + ob.Gap.Distance
	}
	return total
}

// Clone returns a deep copy.
func (p Pattern) Clone() Pattern {
	out := p
	out.Obstacles = append([]Obstacle(nil), p.Obstacles...)
	return out
}

// typeTag classifies a pattern by its dominant shape kind. Killzones are
// ignored. A kind dominates when it covers at least two thirds of the
// obstacles.
func typeTag(obstacles []Obstacle) string {
	var ground, floating int
	for _, ob := range obstacles {
		if ob.Killzone {
			continue
		}
		if ob.Shape.Kind == KindFloating {
			floating++
		} else {
			ground++
		}
	}
	total := ground + floating
	switch {
	case total == 0:
		return "bar"
	case 3*ground >= 2*total:
		return "bar"
	case 3*floating >= 2*total:
		return "platform"
	default:
		return "mixed"
	}
}
