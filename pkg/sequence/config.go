package sequence

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
)

// ValidPath reports whether path names a JSON file. Only the text after the
// last dot is checked, case-insensitively; the file does not have to exist.
func ValidPath(path string) bool {
	ext := path[strings.LastIndex(path, ".")+1:]
	return strings.EqualFold(ext, "json")
}

// LoadConfig reads a generation config into a generic document. Field
// extraction stays with the Resolve functions so each failure can name the
// offending field.
func LoadConfig(path string) (map[string]any, error) {
	if !ValidPath(path) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrParse, path, err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrParse, path, err)
	}
	return cfg, nil
}

// ResolveDuration extracts the required slot count.
func ResolveDuration(cfg map[string]any) (int, error) {
	v, ok := cfg["duration"]
	if !ok {
		return 0, fieldError("duration", "is required")
	}
	n, ok := asInt(v)
	if !ok || n < 0 {
		return 0, fieldError("duration", "must be a non-negative integer")
	}
	return n, nil
}

// ResolveRate extracts the records-per-slot rate. A {min,max} object is
// drawn from once; the caller reuses the returned value for every slot.
func ResolveRate(cfg map[string]any, rng *rand.Rand) (int, error) {
	v, ok := cfg["rate"]
	if !ok {
		return 0, fieldError("rate", "is required")
	}
	switch r := v.(type) {
	case map[string]any:
		lo, ok := asInt(r["min"])
		if !ok || lo < 0 {
			return 0, fieldError("rate.min", "must be a non-negative integer")
		}
		hi, ok := asInt(r["max"])
		if !ok || hi < 0 {
			return 0, fieldError("rate.max", "must be a non-negative integer")
		}
		if lo > hi {
			return 0, fieldError("rate", "min must not exceed max")
		}
		return lo + rng.Intn(hi-lo+1), nil
	default:
		n, ok := asInt(v)
		if !ok || n < 0 {
			return 0, fieldError("rate", "must be a non-negative integer or a {min,max} object")
		}
		return n, nil
	}
}

// ResolveAttribute draws one value from the named attribute pool. The second
// return is false when the config declares no such pool; a declared pool
// with no values is an error, not an absence.
func ResolveAttribute(cfg map[string]any, name string, rng *rand.Rand) (string, bool, error) {
	raw, ok := cfg["attributes"]
	if !ok {
		return "", false, nil
	}
	attrs, ok := raw.(map[string]any)
	if !ok {
		return "", false, fieldError("attributes", "must be an object")
	}
	entry, ok := attrs[name]
	if !ok {
		return "", false, nil
	}
	pool, ok := entry.(map[string]any)
	if !ok {
		return "", false, fieldError("attributes."+name, "must be an object")
	}
	rawValues, ok := pool["values"]
	if !ok {
		return "", false, nil
	}
	values, ok := rawValues.([]any)
	if !ok {
		return "", false, fieldError("attributes."+name+".values", "must be a list")
	}
	if len(values) == 0 {
		return "", false, fmt.Errorf("%w: attributes.%s.values", ErrEmptyPool, name)
	}
	return asString(values[rng.Intn(len(values))]), true, nil
}

func fieldError(field, reason string) error {
	return fmt.Errorf("%w: %q %s", ErrField, field, reason)
}

// asInt accepts only whole numbers from a decoded JSON document.
func asInt(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
