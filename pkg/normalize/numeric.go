package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFiniteFloat converts arbitrary decoded JSON input to a finite float.
// Missing, non-numeric, NaN, and infinite input all yield nil; the function
// is total and never reports an error. Device telemetry is noisy and partial,
// so ingestion must not fail on a single bad field.
func ToFiniteFloat(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return finite(f)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return finite(f)
	default:
		return nil
	}
}

// ToID converts decoded JSON input to a positive integer identifier, or nil
// when the input is absent or not a usable id.
func ToID(value any) *int64 {
	f := ToFiniteFloat(value)
	if f == nil {
		return nil
	}
	id := int64(*f)
	if id <= 0 || float64(id) != *f {
		return nil
	}
	return &id
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
