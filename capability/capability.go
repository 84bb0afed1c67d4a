package capability

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Normalize converts a raw capability token to its canonical form:
// trimmed, lowercased, with internal whitespace runs collapsed to a
// single space. Tokens that normalize to the empty string carry no
// information and are dropped by NormalizeSet.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// NormalizeSet normalizes every token in raw and returns the resulting
// set. Duplicates collapse, empty tokens are dropped.
func NormalizeSet(raw []string) mapset.Set[string] {
	caps := mapset.NewThreadUnsafeSet[string]()
	for _, c := range raw {
		norm := Normalize(c)
		if norm == "" {
			continue
		}
		caps.Add(norm)
	}
	return caps
}
