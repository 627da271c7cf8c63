package device

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-circuit/internal/consts"
)

// Suffixes are matched case-insensitively, so "m" is mega, not milli.
var unitMap = map[string]float64{
	"k":  1e3, // kilo
	"ko": 1e3,
	"m":  1e6, // mega
	"mo": 1e6,
	"g":  1e9, // giga
	"go": 1e9,
}

var (
	nonNumericRe = regexp.MustCompile(`[^\d.]`)
	numericRe    = regexp.MustCompile(`[\d.]`)
	leadingRe    = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
)

// ParseMagnitude - Parse magnitude and suffix. 1k -> 1000, 2.2M -> 2200000
// Never fails: unparseable input yields 1000.
func ParseMagnitude(val string) float64 {
	num, err := LeadingFloat(nonNumericRe.ReplaceAllString(val, ""))
	unit := strings.ToLower(numericRe.ReplaceAllString(val, ""))
	if err != nil {
		return consts.DefaultMagnitude
	}

	multiplier, ok := unitMap[unit]
	if !ok {
		if num == 0 {
			return consts.DefaultMagnitude
		}
		return num
	}
	return num * multiplier
}

// LeadingFloat parses the longest numeric prefix of val. "12V" -> 12
func LeadingFloat(val string) (float64, error) {
	match := leadingRe.FindString(strings.TrimSpace(val))
	if match == "" {
		return 0, fmt.Errorf("invalid numeric value: %q", val)
	}
	return strconv.ParseFloat(match, 64)
}

// Voltage reads a source voltage from its primary value. Unparseable -> 0
func Voltage(props Properties) float64 {
	if props == nil {
		return 0
	}
	v, err := LeadingFloat(props.Primary())
	if err != nil {
		return 0
	}
	return v
}
