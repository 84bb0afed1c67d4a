package job

import (
	"time"

	"github.com/google/uuid"
)

// Event is an internal object recording a job
// status transition for the audit trail
//
//	Event.Status - stores the status value the job
//	transitioned to
type Event struct {
	ID        uuid.UUID
	JobID     string
	MachineID string
	Status    Status
	Timestamp time.Time
}

func NewEvent(jobID, machineID string, status Status) *Event {
	return &Event{
		ID:        uuid.New(),
		JobID:     jobID,
		MachineID: machineID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}
