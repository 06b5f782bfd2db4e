package domain

import (
	"strconv"
	"strings"
)

// EncodeTrace serializes readings as comma-separated decimals.
// An empty trace encodes to the empty string.
func EncodeTrace(readings []float64) string {
	if len(readings) == 0 {
		return ""
	}

	parts := make([]string, len(readings))
	for i, v := range readings {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// DecodeTrace parses a stored trace, skipping tokens that are not numbers
func DecodeTrace(s string) []float64 {
	if strings.TrimSpace(s) == "" {
		return []float64{}
	}

	tokens := strings.Split(s, ",")
	readings := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		readings = append(readings, v)
	}
	return readings
}
