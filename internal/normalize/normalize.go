package normalize

import "strings"

// Name produces the lookup key used for name equality across the
// registries. Only surrounding whitespace is insignificant.
func Name(s string) string {
	return strings.TrimSpace(s)
}
