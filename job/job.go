package job

import (
	"errors"
	"time"
)

type Status int

const (
	Assigned Status = iota
	Completed
)

func (s Status) String() string {
	switch s {
	case Assigned:
		return "ASSIGNED"
	case Completed:
		return "COMPLETED"
	}
	return "UNKNOWN"
}

var stateTransitionMap = map[Status][]Status{
	Assigned:  {Assigned, Completed},
	Completed: {Completed},
}

func contains(states []Status, state Status) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// IsValidStateTransition reports whether a job may move from src to
// dst. A status may always re-enter itself; re-applying an event is
// treated as a no-op, not a transition. Completed is terminal.
func IsValidStateTransition(src Status, dst Status) bool {
	return contains(stateTransitionMap[src], dst)
}

var (
	ErrBlankID      = errors.New("job id must be non-blank")
	ErrDuplicateJob = errors.New("job id already recorded")
	ErrUnknownJob   = errors.New("unknown job id")
)

// Job is one unit of placed work. MachineID never changes after the
// job is recorded.
type Job struct {
	ID          string
	MachineID   string
	Status      Status
	AssignedAt  time.Time
	CompletedAt time.Time
}
