package forecast

import (
	"fmt"
	"math"
	"strconv"
)

// Met Office significant weather codes. The upstream API emits these as
// integers on some endpoints and as strings on others, and uses the literal
// "NA" when no code is available.
var weatherCodes = map[int]string{
	0:  "Clear night",
	1:  "Sunny day",
	2:  "Partly cloudy (night)",
	3:  "Partly cloudy (day)",
	4:  "Not used",
	5:  "Mist",
	6:  "Fog",
	7:  "Cloudy",
	8:  "Overcast",
	9:  "Light rain shower (night)",
	10: "Light rain shower (day)",
	11: "Drizzle",
	12: "Light rain",
	13: "Heavy rain shower (night)",
	14: "Heavy rain shower (day)",
	15: "Heavy rain",
	16: "Sleet shower (night)",
	17: "Sleet shower (day)",
	18: "Sleet",
	19: "Hail shower (night)",
	20: "Hail shower (day)",
	21: "Hail",
	22: "Light snow shower (night)",
	23: "Light snow shower (day)",
	24: "Light snow",
	25: "Heavy snow shower (night)",
	26: "Heavy snow shower (day)",
	27: "Heavy snow",
	28: "Thunder shower (night)",
	29: "Thunder shower (day)",
	30: "Thunder",
}

const notAvailable = "Not available"

// Description resolves a significant weather code to its human-readable
// text. Integer coercion is tried first, then an exact string match against
// the "NA" sentinel. Both paths are needed because the API is inconsistent
// about whether codes arrive as numbers or strings.
func Description(code any) string {
	if n, ok := asCode(code); ok {
		if desc, found := weatherCodes[n]; found {
			return desc
		}
		return fmt.Sprintf("Unknown code: %v", code)
	}

	if s, ok := code.(string); ok && s == "NA" {
		return notAvailable
	}

	return fmt.Sprintf("Unknown code: %v", code)
}

func asCode(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		// JSON numbers decode as float64; fractional values truncate the
		// same way the upstream clients do.
		return int(math.Trunc(n)), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
