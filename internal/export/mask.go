package export

import (
	"slices"
	"strings"
)

// secretSuffixes mark variable names that hold credentials.
var secretSuffixes = []string{"_TOKEN", "_SECRET", "_PASSWORD", "_PASS", "_API_KEY", "_PRIVATE_KEY"}

// SecretCategory is the catalogue category whose variables are always masked.
const SecretCategory = "secrets"

// Sensitive reports whether a variable's value should be masked.
func Sensitive(name string, categories []string) bool {
	if slices.Contains(categories, SecretCategory) {
		return true
	}
	upper := strings.ToUpper(name)
	for _, suffix := range secretSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return true
		}
	}
	return false
}

// mask keeps the first 3 characters visible and replaces the rest with
// asterisks. Strings of 3 or fewer characters are fully masked.
//
//   - mask("") returns ""
//   - mask("abc") returns "***"
//   - mask("ghp_1234") returns "ghp*****"
func mask(secret string) string {
	const keep = 3
	n := len(secret)
	if n <= keep {
		return strings.Repeat("*", n)
	}
	return secret[:keep] + strings.Repeat("*", n-keep)
}
