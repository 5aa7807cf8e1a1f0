package question

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformer chains are stateful, so each call takes its own from the pool.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(isStripped)),
		)
	},
}

// isStripped reports control and byte-order runes that never belong in an
// embedded string. Whitespace controls survive until whitespace collapsing.
func isStripped(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return unicode.Is(unicode.Cc, r) || r == '\uFEFF'
}

// NormalizeText repairs UTF-8, applies NFC, drops control runes, collapses
// every whitespace run (newlines included) to one space, and trims.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}

	return strings.Join(strings.Fields(out), " ")
}

// foldKey is the case-insensitive key used for duplicate detection.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// scalarText returns the text form of a scalar value. Maps, slices, and nil
// report false.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// answerIndex coerces a correctAnswer value to an int. Integral floats and
// decimal strings are accepted.
func answerIndex(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return clampInt(n), true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case float64:
		return integralFloat(v)
	case int:
		return v, true
	case int64:
		return clampInt(v), true
	case uint64:
		if v > math.MaxInt32 {
			return math.MaxInt32, true
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}

// clampInt keeps huge indexes representable; they are out of bounds either way.
func clampInt(n int64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int(n)
}
