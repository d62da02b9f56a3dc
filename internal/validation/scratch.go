package validation

import "fmt"

// jsonTypes maps scratch value kinds to JSON Schema types.
var jsonTypes = map[string]string{
	"number":  "integer",
	"string":  "string",
	"boolean": "boolean",
}

// ScratchValue returns the schema for {"value": <kind>}.
func ScratchValue(kind string) *Schema {
	return mustCompileMap("scratch-value-"+kind, map[string]any{
		"type":     "object",
		"required": []string{"value"},
		"properties": map[string]any{
			"value": map[string]any{
				"type": jsonTypes[kind],
				"x-messages": map[string]string{
					"required":     "Value is required",
					"invalid_type": fmt.Sprintf("Value must be a %s", kind),
				},
			},
		},
		"x-order": []string{"value"},
	})
}

// ScratchIndexed returns the schema for {"index": n, "value": v}. The value
// may also arrive as a string and is converted by the store.
func ScratchIndexed(kind string) *Schema {
	valueTypes := []string{jsonTypes[kind]}
	if kind != "string" {
		valueTypes = append(valueTypes, "string")
	}
	return mustCompileMap("scratch-indexed-"+kind, map[string]any{
		"type":     "object",
		"required": []string{"index", "value"},
		"properties": map[string]any{
			"index": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"x-messages": map[string]string{
					"required":     "Index is required",
					"invalid_type": "Index must be an integer",
					"number_gte":   "Index out of range",
				},
			},
			"value": map[string]any{
				"type": valueTypes,
				"x-messages": map[string]string{
					"required":     "Value is required",
					"invalid_type": fmt.Sprintf("Value must be a %s", kind),
				},
			},
		},
		"x-order": []string{"index", "value"},
	})
}

// ScratchItem is the schema for {"item": "..."}.
var ScratchItem = mustCompileMap("scratch-item", map[string]any{
	"type":     "object",
	"required": []string{"item"},
	"properties": map[string]any{
		"item": map[string]any{
			"type": "string",
			"x-messages": map[string]string{
				"required":     "Item is required",
				"invalid_type": "Item must be a string",
			},
		},
	},
	"x-order": []string{"item"},
})

func mustCompileMap(name string, doc map[string]any) *Schema {
	s, err := CompileMap(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}
