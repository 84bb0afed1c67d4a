package strategy

import (
	"github.com/vasilii314/scheduler/machine"
)

type StrategyType string

const (
	LeastUnfinishedType StrategyType = "leastunfinished"
	MostFinishedType    StrategyType = "mostfinished"
)

// Criteria codes accepted by the scheduler API. Codes outside the
// registry fall back to LeastUnfinished.
const (
	CriteriaLeastUnfinished = 0
	CriteriaMostFinished    = 1
)

// Strategy ranks capability-compatible machines and picks one. The
// candidates slice is never empty and the chosen machine is
// deterministic: every built-in strategy orders by its metric first
// and by lexicographically smallest machine id second, which is a
// total order.
type Strategy interface {
	Name() StrategyType
	Select(candidates []*machine.Machine) *machine.Machine
}

var registry = map[int]Strategy{
	CriteriaLeastUnfinished: &LeastUnfinished{},
	CriteriaMostFinished:    &MostFinished{},
}

// ForCriteria maps a criteria code to its strategy. Unknown codes
// silently fall back to LeastUnfinished.
func ForCriteria(code int) Strategy {
	if s, ok := registry[code]; ok {
		return s
	}
	return registry[CriteriaLeastUnfinished]
}
