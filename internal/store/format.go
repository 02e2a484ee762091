package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ruralpay/hacklab/internal/models"
)

// FormatNumber renders f the way it is spliced into query and response text:
// integral values carry no fractional part.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseNumber coerces caller input to a number. Anything non-numeric is 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0
		}
		return float64(n)
	}
	if !numericLiteral(s) {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}

// Number reads a column value as a number.
func Number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		return ParseNumber(n)
	case []byte:
		return ParseNumber(string(n))
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

// Text renders a column value for splicing into markup.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return FormatNumber(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return t.UTC().Format(models.TimestampLayout)
	default:
		return fmt.Sprint(t)
	}
}

// numericLiteral rejects the inf and nan spellings ParseFloat accepts. Only
// an exact, optionally signed, Infinity passes.
func numericLiteral(s string) bool {
	switch strings.TrimLeft(s, "+-") {
	case "Infinity":
		return len(s) <= len("Infinity")+1
	}
	for _, c := range s {
		if c >= 'a' && c <= 'z' && c != 'e' || c >= 'A' && c <= 'Z' && c != 'E' {
			return false
		}
	}
	return true
}
