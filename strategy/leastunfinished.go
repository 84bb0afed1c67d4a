package strategy

import (
	"github.com/vasilii314/scheduler/machine"
)

// LeastUnfinished picks the machine with the fewest jobs currently
// assigned and not yet completed.
type LeastUnfinished struct{}

func (s *LeastUnfinished) Name() StrategyType {
	return LeastUnfinishedType
}

func (s *LeastUnfinished) Select(candidates []*machine.Machine) *machine.Machine {
	var best *machine.Machine
	for i, m := range candidates {
		if i == 0 {
			best = m
			continue
		}
		if m.UnfinishedCount < best.UnfinishedCount {
			best = m
			continue
		}
		if m.UnfinishedCount == best.UnfinishedCount && m.ID < best.ID {
			best = m
		}
	}
	return best
}
