package encoding

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
)

// Documents groups the four documents under their file stems so they can be
// described by one schema.
type Documents struct {
	Settings     physics.SearchSettings `json:"settings"`
	InitialState physics.PhysState      `json:"initial_state"`
	TargetState  physics.PhysState      `json:"target_state"`
	StaticState  StaticDocument         `json:"static_state"`
}

// Schema returns the JSON schema of the problem documents.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Documents))
	schema.Title = "Pathfinder problem documents"
	schema.Description = "settings.json, initial_state.json, target_state.json and static_state.json of a problem directory"
	return schema
}

// SchemaJSON returns Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding: cannot marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
