// ABOUTME: Swim time parsing, formatting, and effort math.
// ABOUTME: Pure helpers shared by the entry log, CLI, and MCP server.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FormatSeconds renders a time as "m:ss.mmm" above a minute and "ss.mmm"
// below. Non-positive or non-finite values render as "--".
func FormatSeconds(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "--"
	}
	if seconds >= 60 {
		mins := int(seconds / 60)
		secs := math.Mod(seconds, 60)
		return fmt.Sprintf("%d:%06.3f", mins, secs)
	}
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// ParseInput parses a time string like "25.340" or "1:03.450" into seconds.
// Returns an error for empty or malformed input.
func ParseInput(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty time")
	}

	if strings.Contains(input, ":") {
		parts := strings.SplitN(input, ":", 2)
		mins, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes %q", parts[0])
		}
		secs, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid seconds %q", parts[1])
		}
		return mins*60 + secs, nil
	}

	secs, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", input)
	}
	return secs, nil
}

// ResultSeconds computes the target time for a practice swim at the given
// effort: the best time slowed down by the remaining effort fraction.
// effortPercent is a decimal, e.g. 0.8 for 80%.
func ResultSeconds(bestSeconds, effortPercent float64) float64 {
	return bestSeconds + bestSeconds*(1-effortPercent)
}

// EffortPercent parses an effort string like "80" or "80%" into a decimal
// fraction, defaulting to 0.8 when the input has no leading number.
func EffortPercent(effort string) float64 {
	effort = strings.TrimSuffix(strings.TrimSpace(effort), "%")
	n, err := strconv.Atoi(effort)
	if err != nil || n <= 0 {
		n = 80
	}
	return float64(n) / 100
}

var unitSuffix = regexp.MustCompile(`(?i)[my]$`)

// DistanceValue strips a trailing m/y unit suffix from a distance string.
func DistanceValue(distance string) string {
	return unitSuffix.ReplaceAllString(distance, "")
}
