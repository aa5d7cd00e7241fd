package bulb

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stateSchemaURL names the embedded schema resource.
const stateSchemaURL = "bulb-state.json"

// stateSchema is the subset of the milight hub state document the gateway sends.
const stateSchema = `{
  "type": "object",
  "properties": {
    "status":      {"type": "string", "enum": ["ON", "OFF", "on", "off"]},
    "state":       {"type": "string", "enum": ["ON", "OFF", "on", "off"]},
    "hue":         {"type": "integer", "minimum": 0, "maximum": 359},
    "saturation":  {"type": "integer", "minimum": 0, "maximum": 100},
    "brightness":  {"type": "integer", "minimum": 0, "maximum": 255},
    "level":       {"type": "integer", "minimum": 0, "maximum": 100},
    "kelvin":      {"type": "integer", "minimum": 0, "maximum": 100},
    "color_temp":  {"type": "integer", "minimum": 153, "maximum": 370},
    "mode":        {"type": "integer", "minimum": 0},
    "effect":      {"type": "string"},
    "command":     {"type": "string"},
    "commands":    {"type": "array", "items": {"type": "string"}},
    "color": {
      "oneOf": [
        {"type": "string"},
        {
          "type": "object",
          "properties": {
            "r": {"type": "integer", "minimum": 0, "maximum": 255},
            "g": {"type": "integer", "minimum": 0, "maximum": 255},
            "b": {"type": "integer", "minimum": 0, "maximum": 255}
          },
          "required": ["r", "g", "b"]
        }
      ]
    }
  }
}`

var (
	//nolint:gochecknoglobals // Compiled once on first use.
	compileStateSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(stateSchema))
		if err != nil {
			return nil, fmt.Errorf("unmarshal state schema: %w", err)
		}

		c := jsonschema.NewCompiler()
		if err = c.AddResource(stateSchemaURL, doc); err != nil {
			return nil, fmt.Errorf("add state schema: %w", err)
		}

		return c.Compile(stateSchemaURL)
	})
)

// ValidateState checks a state document against the bulb state schema.
// Numbers are expected as decoded from JSON (float64).
func ValidateState(state map[string]any) error {
	if state == nil {
		return nil
	}

	schema, err := compileStateSchema()
	if err != nil {
		return fmt.Errorf("compile state schema: %w", err)
	}

	if err = schema.Validate(state); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	return nil
}
