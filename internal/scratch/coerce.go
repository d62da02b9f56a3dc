package scratch

import (
	"math"
	"strconv"
	"strings"

	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// Index bodies carry the value either natively or as a string; these
// helpers convert it to the list's element type.

func CoerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v), nil
		}
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err == nil {
			return int(n), nil
		}
	}
	return 0, dom.Invalid("value", "Value %v is not a valid number", raw)
}

func CoerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, dom.Invalid("value", "Value %v is not a valid boolean", raw)
}

func CoerceString(raw any) (string, error) {
	if v, ok := raw.(string); ok {
		return v, nil
	}
	return "", dom.Invalid("value", "Value %v is not a valid string", raw)
}
