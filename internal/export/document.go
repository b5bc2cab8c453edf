// Package export converts patterns to and from the JSON document consumed by
// the game, writes documents to disk and loads them back.
//
// Inside the document, shapes and gaps are compact strings:
//
//	bar-W-H            floor-rooted bar, W wide and H high (grid units)
//	bar-W-FLOOR-CEIL   floating platform between FLOOR and CEIL
//	gap-M              gap of M gap units (M may be fractional, e.g. 1.75)
//	gap-M-HAZARD       the same gap filled with a hazard
package export

// Document is the on-disk form of a pattern.
type Document struct {
	Name        string     `json:"name" jsonschema:"minLength=1,description=Display name including the difficulty"`
	Description string     `json:"description"`
	Obstacles   []Obstacle `json:"obstacles" jsonschema:"minItems=1"`
	Metadata    Metadata   `json:"metadata"`
}

// Obstacle is one encoded obstacle.
type Obstacle struct {
	BarType          string `json:"bar_type" jsonschema:"pattern=^bar-[0-9]+-[0-9]+(-[0-9]+)?$"`
	GapType          string `json:"gap_type" jsonschema:"pattern=^gap-[0-9]+(\\.[0-9]+)?(-[a-z]+)?$"`
	IsKillzone       bool   `json:"is_killzone,omitempty"`
	HazardType       string `json:"hazard_type,omitempty" jsonschema:"enum=spikes,enum=saw,enum=lava,enum=electric,enum=laser,enum=poison"`
	ContinuousHazard bool   `json:"continuous_hazard,omitempty"`
}

// Metadata mirrors pattern.Meta.
type Metadata struct {
	Type   string `json:"type" jsonschema:"enum=bar,enum=platform,enum=mixed"`
	Length int    `json:"length" jsonschema:"minimum=1"`
	Rhythm string `json:"rhythm"`
}
