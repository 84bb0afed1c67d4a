package job

import (
	"fmt"
	"log"
	"time"

	"github.com/vasilii314/scheduler/store"
)

// Ledger tracks every job ever placed, keyed by job id. A job enters
// the ledger in the Assigned status and can only move to Completed.
type Ledger struct {
	Db store.Store[string, *Job]
}

func NewLedger() *Ledger {
	return &Ledger{
		Db: store.NewInMemory[string, *Job](),
	}
}

// Record creates a new Assigned job bound to machineID. The caller is
// expected to have checked for an existing record first; a duplicate
// id is still rejected here.
func (l *Ledger) Record(jobID, machineID string) (*Job, error) {
	if _, err := l.Db.Get(jobID); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateJob, jobID)
	}
	j := &Job{
		ID:         jobID,
		MachineID:  machineID,
		Status:     Assigned,
		AssignedAt: time.Now().UTC(),
	}
	if err := l.Db.Put(jobID, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Lookup returns the recorded job, or false if jobID was never placed.
func (l *Ledger) Lookup(jobID string) (*Job, bool) {
	j, err := l.Db.Get(jobID)
	if err != nil {
		return nil, false
	}
	return j, true
}

// Complete transitions the job to Completed. The returned bool is true
// only when the status actually changed; completing an already
// completed job is a no-op. An unrecorded job id is an error.
func (l *Ledger) Complete(jobID string) (*Job, bool, error) {
	j, err := l.Db.Get(jobID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}
	if j.Status == Completed {
		log.Printf("[job.Ledger] [Complete] Job %s already completed, nothing to do\n", jobID)
		return j, false, nil
	}
	if !IsValidStateTransition(j.Status, Completed) {
		return nil, false, fmt.Errorf("invalid transition from %v to %v for job %s", j.Status, Completed, jobID)
	}
	j.Status = Completed
	j.CompletedAt = time.Now().UTC()
	return j, true, nil
}
