package utils

import (
	"strconv"
	"strings"
)

// ParseFloat converts a query value to float64, falling back to defaultValue
// when empty. Malformed input is reported to the caller.
func ParseFloat(value string, defaultValue float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}

	return strconv.ParseFloat(value, 64)
}
