package value

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

var (
	truthy = []string{"1", "true", "yes", "on"}
	falsy  = []string{"0", "false", "no", "off"}
)

// Classify infers the type of raw. The first matching rule wins:
//
//  1. "1", "true", "yes", "on" (any case) are true; "0", "false", "no", "off" are false.
//  2. Text containing "://" or "@" is a URL, including scp-like "git@host" remotes.
//  3. Text starting with "/", "~" or "." and containing no ":" is a path.
//  4. Text that parses as an IPv4 or IPv6 address is an IP.
//  5. Text made only of ASCII digits is an integer.
//  6. Anything else is returned as a string.
//
// An empty raw yields Absent.
func Classify(raw string) Value {
	if raw == "" {
		return Value{}
	}

	if matchesAny(raw, truthy) {
		return Value{kind: Bool, raw: raw, b: true}
	}
	if matchesAny(raw, falsy) {
		return Value{kind: Bool, raw: raw, b: false}
	}

	if strings.Contains(raw, "://") || strings.Contains(raw, "@") {
		return Value{kind: URL, raw: raw, url: ParseURL(raw)}
	}

	// PATH-style lists ("/usr/bin:/bin") are not a single path.
	if strings.ContainsRune("/~.", rune(raw[0])) && !strings.Contains(raw, ":") {
		return Value{kind: Path, raw: raw}
	}

	if addr, err := netip.ParseAddr(raw); err == nil {
		return Value{kind: IP, raw: raw, ip: addr}
	}

	if n, ok := parseDigits(raw); ok {
		return Value{kind: Int, raw: raw, i: n}
	}

	return Value{kind: String, raw: raw}
}

// Of classifies an arbitrary value by its string form. nil yields Absent.
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return Classify(t)
	case fmt.Stringer:
		return Classify(t.String())
	default:
		return Classify(fmt.Sprint(v))
	}
}

func matchesAny(s string, set []string) bool {
	for _, candidate := range set {
		if strings.EqualFold(s, candidate) {
			return true
		}
	}
	return false
}

// parseDigits accepts unsigned decimal text that fits in an int64.
func parseDigits(s string) (int64, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
