package strategy

import (
	"github.com/vasilii314/scheduler/machine"
)

// MostFinished picks the machine with the largest completed-job total,
// favoring machines with a proven track record.
type MostFinished struct{}

func (s *MostFinished) Name() StrategyType {
	return MostFinishedType
}

func (s *MostFinished) Select(candidates []*machine.Machine) *machine.Machine {
	var best *machine.Machine
	for i, m := range candidates {
		if i == 0 {
			best = m
			continue
		}
		if m.FinishedCount > best.FinishedCount {
			best = m
			continue
		}
		if m.FinishedCount == best.FinishedCount && m.ID < best.ID {
			best = m
		}
	}
	return best
}
