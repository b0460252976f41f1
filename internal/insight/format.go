package insight

import (
	"fmt"
	"math"
	"strconv"
)

// money renders an amount rounded to whole currency units with thousands
// separators, prefixed by the configured symbol.
func money(amount float64, cfg Config) string {
	return cfg.CurrencySymbol + groupDigits(int64(math.Round(amount)))
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// percent renders a rate with one decimal place.
func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
