package capability

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Index is an inverted index from a normalized capability token to the
// set of machine ids offering it. It also tracks the universe of all
// registered machine ids so that an empty requirement can match every
// machine.
type Index struct {
	byCapability map[string]mapset.Set[string]
	machines     mapset.Set[string]
}

func NewIndex() *Index {
	return &Index{
		byCapability: make(map[string]mapset.Set[string]),
		machines:     mapset.NewThreadUnsafeSet[string](),
	}
}

// Add registers machineID under every capability in caps. The tokens
// in caps must already be normalized.
func (x *Index) Add(machineID string, caps mapset.Set[string]) {
	x.machines.Add(machineID)
	for c := range caps.Iter() {
		ids, ok := x.byCapability[c]
		if !ok {
			ids = mapset.NewThreadUnsafeSet[string]()
			x.byCapability[c] = ids
		}
		ids.Add(machineID)
	}
}

// CandidatesFor returns the ids of machines whose capability set is a
// superset of required. An empty requirement matches every registered
// machine. If any required token has no registered machine the result
// is empty without intersecting the remaining sets.
func (x *Index) CandidatesFor(required mapset.Set[string]) mapset.Set[string] {
	if required.Cardinality() == 0 {
		return x.machines.Clone()
	}
	perToken := make([]mapset.Set[string], 0, required.Cardinality())
	for c := range required.Iter() {
		ids, ok := x.byCapability[c]
		if !ok || ids.Cardinality() == 0 {
			return mapset.NewThreadUnsafeSet[string]()
		}
		perToken = append(perToken, ids)
	}
	// Intersect starting from the smallest set to keep the
	// intermediate result small.
	sort.Slice(perToken, func(i, j int) bool {
		return perToken[i].Cardinality() < perToken[j].Cardinality()
	})
	candidates := perToken[0].Clone()
	for i := 1; i < len(perToken) && candidates.Cardinality() > 0; i++ {
		candidates = candidates.Intersect(perToken[i])
	}
	return candidates
}
