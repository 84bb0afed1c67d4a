package scheduler

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/vasilii314/scheduler/capability"
	"github.com/vasilii314/scheduler/job"
	"github.com/vasilii314/scheduler/machine"
	"github.com/vasilii314/scheduler/store"
	"github.com/vasilii314/scheduler/strategy"
)

// Scheduler owns all mutable placement state: the machine registry,
// the job ledger and the event log. Every public method runs under a
// single coarse lock, so each operation is atomic with respect to the
// whole scheduler. Instances are independent; create one per test or
// per simulation run.
type Scheduler struct {
	mu sync.Mutex
	// Machines tracks every machine in the system along
	// with the capability index used for placement queries.
	Machines *machine.Registry
	// Jobs tracks every job ever placed.
	Jobs *job.Ledger
	// EventDb records job status transitions for the
	// status report.
	EventDb store.Store[string, *job.Event]
}

func New() *Scheduler {
	return &Scheduler{
		Machines: machine.NewRegistry(),
		Jobs:     job.NewLedger(),
		EventDb:  store.NewInMemory[string, *job.Event](),
	}
}

// AddMachine registers a machine and its capabilities. The id must be
// non-blank and not registered before; capabilities are normalized
// case- and whitespace-insensitively.
func (s *Scheduler) AddMachine(machineID string, capabilities []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Machines.Add(machineID, capabilities)
}

// AssignMachineToJob places jobID on a machine whose capability set
// covers every required token, choosing among candidates with the
// strategy selected by criteria. It returns the chosen machine id,
// or "" when no machine qualifies; in that case the job is not
// recorded, so a later retry can succeed once a suitable machine has
// been added. Re-assigning an already recorded job returns its
// original machine id and changes nothing.
func (s *Scheduler) AssignMachineToJob(jobID string, requiredCapabilities []string, criteria int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jid := strings.TrimSpace(jobID)
	if jid == "" {
		return "", job.ErrBlankID
	}
	if existing, ok := s.Jobs.Lookup(jid); ok {
		log.Printf("[scheduler.Scheduler] [AssignMachineToJob] Job %s already assigned to %s\n", jid, existing.MachineID)
		return existing.MachineID, nil
	}
	required := capability.NormalizeSet(requiredCapabilities)
	candidates := s.Machines.CandidatesFor(required)
	if len(candidates) == 0 {
		log.Printf("[scheduler.Scheduler] [AssignMachineToJob] No machine satisfies %v for job %s\n", required, jid)
		return "", nil
	}
	chosen := strategy.ForCriteria(criteria).Select(candidates)
	if _, err := s.Jobs.Record(jid, chosen.ID); err != nil {
		return "", err
	}
	if err := s.Machines.IncrementUnfinished(chosen.ID); err != nil {
		return "", err
	}
	s.appendEvent(jid, chosen.ID, job.Assigned)
	log.Printf("[scheduler.Scheduler] [AssignMachineToJob] Assigned job %s to machine %s\n", jid, chosen.ID)
	return chosen.ID, nil
}

// JobCompleted marks jobID completed and moves one unit of work from
// its machine's unfinished counter to its finished counter. Completing
// an already completed job is a no-op; a job id that was never
// assigned is an error.
func (s *Scheduler) JobCompleted(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	jid := strings.TrimSpace(jobID)
	if jid == "" {
		return job.ErrBlankID
	}
	j, changed, err := s.Jobs.Complete(jid)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.Machines.CompleteOne(j.MachineID); err != nil {
		return err
	}
	s.appendEvent(jid, j.MachineID, job.Completed)
	log.Printf("[scheduler.Scheduler] [JobCompleted] Job %s completed on machine %s\n", jid, j.MachineID)
	return nil
}

func (s *Scheduler) appendEvent(jobID, machineID string, status job.Status) {
	e := job.NewEvent(jobID, machineID, status)
	if err := s.EventDb.Put(e.ID.String(), e); err != nil {
		log.Printf("[scheduler.Scheduler] [appendEvent] Unable to record event for job %s: %v\n", jobID, err)
	}
}

// GetMachines returns all machines ordered by id.
func (s *Scheduler) GetMachines() []*machine.Machine {
	s.mu.Lock()
	defer s.mu.Unlock()
	machines, err := s.Machines.Db.List()
	if err != nil {
		return nil
	}
	sort.Slice(machines, func(i, j int) bool {
		return machines[i].ID < machines[j].ID
	})
	return machines
}

// GetJobs returns all recorded jobs ordered by id.
func (s *Scheduler) GetJobs() []*job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs, err := s.Jobs.Db.List()
	if err != nil {
		return nil
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].ID < jobs[j].ID
	})
	return jobs
}

// GetEvents returns the job event log in chronological order.
func (s *Scheduler) GetEvents() []*job.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.EventDb.List()
	if err != nil {
		return nil
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.Before(events[j].Timestamp)
		}
		if events[i].JobID != events[j].JobID {
			return events[i].JobID < events[j].JobID
		}
		// A job is always assigned before it completes.
		return events[i].Status < events[j].Status
	})
	return events
}
