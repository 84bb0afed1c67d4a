package machine

import (
	"errors"
	"fmt"
	"log"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vasilii314/scheduler/capability"
	"github.com/vasilii314/scheduler/store"
)

var (
	ErrBlankID     = errors.New("machine id must be non-blank")
	ErrDuplicateID = errors.New("machine id already exists")
)

// Registry holds one record per machine and the capability
// index used to answer placement queries. Capabilities are
// immutable after Add; only the two counters change afterwards.
type Registry struct {
	Db    store.Store[string, *Machine]
	Index *capability.Index
}

func NewRegistry() *Registry {
	return &Registry{
		Db:    store.NewInMemory[string, *Machine](),
		Index: capability.NewIndex(),
	}
}

// Add registers a new machine with its capability set. The id is
// trimmed; capability tokens are normalized and deduplicated.
func (r *Registry) Add(id string, capabilities []string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrBlankID
	}
	if _, err := r.Db.Get(id); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	caps := capability.NormalizeSet(capabilities)
	m := New(id, caps)
	if err := r.Db.Put(id, m); err != nil {
		return err
	}
	r.Index.Add(id, caps)
	log.Printf("[machine.Registry] [Add] Registered machine %s with capabilities %v\n", id, caps)
	return nil
}

func (r *Registry) Get(id string) (*Machine, error) {
	return r.Db.Get(id)
}

// CandidatesFor returns every machine whose capability set is a
// superset of required. Required must already be normalized.
func (r *Registry) CandidatesFor(required mapset.Set[string]) []*Machine {
	ids := r.Index.CandidatesFor(required)
	candidates := make([]*Machine, 0, ids.Cardinality())
	for id := range ids.Iter() {
		m, err := r.Db.Get(id)
		if err != nil {
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates
}

// IncrementUnfinished records a new assignment on the machine.
func (r *Registry) IncrementUnfinished(id string) error {
	m, err := r.Db.Get(id)
	if err != nil {
		return err
	}
	m.UnfinishedCount++
	return nil
}

// CompleteOne moves one unit of work from unfinished to finished.
// The unfinished counter is floored at zero.
func (r *Registry) CompleteOne(id string) error {
	m, err := r.Db.Get(id)
	if err != nil {
		return err
	}
	if m.UnfinishedCount > 0 {
		m.UnfinishedCount--
	}
	m.FinishedCount++
	return nil
}
