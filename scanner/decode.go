package scanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// PAYLOAD DECODING — JSON attribute payloads → ordered sequences
// ============================================================================
// Absent or blank attributes default to empty sequences per the markup
// contract. A present-but-unparseable attribute is a malformed payload:
// that one element is skipped and reported, the scan continues.
// ============================================================================

// ErrMalformedPayload marks a labels/values attribute that is present but
// not valid JSON of the expected shape.
var ErrMalformedPayload = errors.New("malformed chart payload")

// decodeLabels parses a JSON string-array attribute.
func decodeLabels(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, fmt.Errorf("%w: labels %q: %v", ErrMalformedPayload, clip(raw), err)
	}
	return labels, nil
}

// decodeValues parses a JSON number-array attribute.
func decodeValues(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return []float64{}, nil
	}
	var values []float64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%w: values %q: %v", ErrMalformedPayload, clip(raw), err)
	}
	return values, nil
}

// clip truncates long payloads so one bad attribute can't flood a report.
func clip(s string) string {
	if len(s) > 120 {
		return s[:120] + "…"
	}
	return s
}
