package value

import "strings"

// IntNames lists variables whose values are always integers.
var IntNames = []string{"GIT_MERGE_VERBOSITY", "PID", "PPID"}

// IntSuffixes lists name suffixes that denote numeric values:
// attempt counters, ids, group ids, job counts, sequence numbers, ports and user ids.
var IntSuffixes = []string{"_ATTEMPT", "_ID", "_GID", "_JOBS", "_NUMBER", "_PORT", "_UID"}

// ForcesInt reports whether key is declared to hold an integer.
func ForcesInt(key string) bool {
	for _, name := range IntNames {
		if key == name {
			return true
		}
	}
	for _, suffix := range IntSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// ClassifyForKey classifies raw as the value of the variable key.
//
// Keys accepted by ForcesInt yield an Int whenever raw is all digits, even
// when Classify would pick another kind ("1" stays 1 rather than true).
// Non-numeric text under such keys silently goes through Classify.
func ClassifyForKey(key, raw string) Value {
	if raw != "" && ForcesInt(key) {
		if n, ok := parseDigits(raw); ok {
			return Value{kind: Int, raw: raw, i: n}
		}
	}
	return Classify(raw)
}
