package export

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the pattern document schema.
const SchemaID = "https://github.com/vovakirdan/jumpforge/schema/pattern.json"

// Schema returns the JSON schema describing Document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&Document{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "jumpforge obstacle pattern"
	s.Description = "An obstacle pattern validated against the runner's jump physics."
	return s
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
