package rowmodel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseApprovalPercent parses a difficulty row's raw approval_percent field,
// accepting "78%", "78,5" (comma decimal separator) and "78.5" forms.
// Returns a value in [0.0, 100.0].
func ParseApprovalPercent(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	s = strings.Replace(s, ",", ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("rowmodel: bad approval_percent %q: %w", raw, err)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("rowmodel: approval_percent %q out of range [0,100]", raw)
	}
	return v, nil
}
