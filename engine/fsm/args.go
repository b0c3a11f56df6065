package fsm

import "fmt"

// IntArg reads an integer argument decoded from TOML (int64) or JSON-like sources (float64)
func IntArg(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument '%s'", key)
	}
	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("argument '%s' must be an integer, got %v", key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("argument '%s' must be an integer, got %T", key, raw)
	}
}

// StringArg reads a string argument
func StringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument '%s'", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument '%s' must be a string, got %T", key, raw)
	}
	return s, nil
}
