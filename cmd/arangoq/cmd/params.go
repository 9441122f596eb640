package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseValue reads JSON literals so that numbers, booleans and lists keep their type;
// anything else is taken as a plain string.
func parseValue(raw string) interface{} {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

func parseParams(raw map[string]string) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	params := make(map[string]interface{}, len(raw))
	for name, value := range raw {
		params[name] = parseValue(value)
	}
	return params
}

// parseAssignments turns name=value arguments into attribute values
func parseAssignments(args []string) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("expected name=value, got '%s'", arg)
		}
		values[strings.TrimSpace(name)] = parseValue(value)
	}
	return values, nil
}
