package catalog

import (
	"fmt"
	"strconv"
)

// stringArg reads a string argument, returning def when the argument is
// absent or nil. Non-string values are stringified rather than rejected
// since the input contract is not enforced before execution.
func stringArg(args map[string]any, key, def string) string {
	value, ok := args[key]
	if !ok || value == nil {
		return def
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// formatValue renders an argument for path or query interpolation.
// JSON numbers decode as float64; whole values must not gain a ".0".
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// hasID reports whether a resolved record carries a usable identifier,
// treating nil, empty strings and zero as missing.
func hasID(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

// Schema builders for the declarative input contracts.

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func objectProp(description string) map[string]any {
	return map[string]any{"type": "object", "description": description}
}

func integerProp(description string, bounds ...int) map[string]any {
	prop := map[string]any{"type": "integer", "description": description}
	if len(bounds) > 0 {
		prop["minimum"] = bounds[0]
	}
	if len(bounds) > 1 {
		prop["maximum"] = bounds[1]
	}
	return prop
}
