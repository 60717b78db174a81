package normalize

import (
	"strconv"
	"strings"
)

// Length units understood by ParseLength.
const (
	UnitPx      = "px"
	UnitPercent = "%"
	UnitEm      = "em"
	UnitPt      = "pt"
)

var lengthUnits = []string{UnitPx, UnitPercent, UnitEm, UnitPt}

// ParseLength parses "<n>", "<n>px", "<n>%", "<n>em" or "<n>pt". A bare
// number is treated as pixels. ok is false for anything else, including
// keywords such as "auto".
func ParseLength(raw string) (value float64, unit string, ok bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return 0, "", false
	}

	unit = UnitPx
	number := trimmed
	for _, candidate := range lengthUnits {
		if strings.HasSuffix(trimmed, candidate) {
			unit = candidate
			number = strings.TrimSpace(strings.TrimSuffix(trimmed, candidate))
			break
		}
	}

	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, "", false
	}
	return n, unit, true
}
