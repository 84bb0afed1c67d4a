package machine

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Machine is a representation of a physical machine
// that jobs can be placed on. Capabilities are
// normalized tokens and never change after creation.
type Machine struct {
	ID           string
	Capabilities mapset.Set[string]
	// UnfinishedCount tracks jobs currently assigned
	// to this machine and not yet completed.
	UnfinishedCount int
	// FinishedCount tracks jobs completed on this
	// machine over its whole lifetime.
	FinishedCount int
}

func New(id string, capabilities mapset.Set[string]) *Machine {
	return &Machine{
		ID:           id,
		Capabilities: capabilities,
	}
}

// HasCapabilities reports whether the machine offers every
// token in required.
func (m *Machine) HasCapabilities(required mapset.Set[string]) bool {
	return required.IsSubset(m.Capabilities)
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine{id=%s, unfinished=%d, finished=%d}", m.ID, m.UnfinishedCount, m.FinishedCount)
}
