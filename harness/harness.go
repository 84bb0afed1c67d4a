package harness

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/golang-collections/collections/queue"
	"github.com/vasilii314/scheduler/scheduler"
)

// Op is one scripted scheduler operation.
type Op struct {
	Line     int
	Kind     string
	ID       string
	Caps     []string
	Criteria int
}

// Result pairs an operation with its outcome. Output holds the chosen
// machine id for assign ops ("<unplaceable>" for the empty sentinel)
// and "ok" for the others.
type Result struct {
	Op     Op
	Output string
	Err    error
}

// Runner feeds a script of operations to a Scheduler. Operations are
// parsed up front, held on a pending queue and applied in FIFO order,
// one at a time.
type Runner struct {
	// Pending queue stores all parsed operations
	// before they are applied to the scheduler.
	Pending   queue.Queue
	Scheduler *scheduler.Scheduler
}

func New(s *scheduler.Scheduler) *Runner {
	return &Runner{
		Pending:   *queue.New(),
		Scheduler: s,
	}
}

// Load parses a scenario script and enqueues its operations. One
// operation per line:
//
//	add-machine <machineId> [cap1,cap2,...]
//	assign <jobId> [cap1,cap2,...] [criteria]
//	complete <jobId>
//
// Blank lines and lines starting with # are skipped. A malformed line
// aborts the load with an error naming the line number.
func (r *Runner) Load(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseOp(line, text)
		if err != nil {
			return err
		}
		r.Pending.Enqueue(op)
	}
	return scanner.Err()
}

func parseOp(line int, text string) (Op, error) {
	fields := strings.Fields(text)
	op := Op{Line: line, Kind: fields[0]}
	switch op.Kind {
	case "add-machine":
		if len(fields) < 2 || len(fields) > 3 {
			return op, fmt.Errorf("line %d: add-machine expects <machineId> [capabilities]", line)
		}
		op.ID = fields[1]
		if len(fields) == 3 {
			op.Caps = splitCaps(fields[2])
		}
	case "assign":
		if len(fields) < 2 || len(fields) > 4 {
			return op, fmt.Errorf("line %d: assign expects <jobId> [capabilities] [criteria]", line)
		}
		op.ID = fields[1]
		if len(fields) >= 3 {
			op.Caps = splitCaps(fields[2])
		}
		if len(fields) == 4 {
			criteria, err := strconv.Atoi(fields[3])
			if err != nil {
				return op, fmt.Errorf("line %d: criteria must be an integer: %v", line, err)
			}
			op.Criteria = criteria
		}
	case "complete":
		if len(fields) != 2 {
			return op, fmt.Errorf("line %d: complete expects <jobId>", line)
		}
		op.ID = fields[1]
	default:
		return op, fmt.Errorf("line %d: unknown operation %q", line, op.Kind)
	}
	return op, nil
}

func splitCaps(csv string) []string {
	var caps []string
	for _, c := range strings.Split(csv, ",") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		caps = append(caps, c)
	}
	return caps
}

// Run drains the pending queue, applying each operation to the
// scheduler. Operation failures are collected in the results, not
// fatal; the run continues with the next operation.
func (r *Runner) Run() []Result {
	results := make([]Result, 0, r.Pending.Len())
	for r.Pending.Len() > 0 {
		op := r.Pending.Dequeue().(Op)
		results = append(results, r.apply(op))
	}
	return results
}

func (r *Runner) apply(op Op) Result {
	res := Result{Op: op}
	switch op.Kind {
	case "add-machine":
		res.Err = r.Scheduler.AddMachine(op.ID, op.Caps)
		if res.Err == nil {
			res.Output = "ok"
		}
	case "assign":
		machineID, err := r.Scheduler.AssignMachineToJob(op.ID, op.Caps, op.Criteria)
		res.Err = err
		if err == nil {
			if machineID == "" {
				res.Output = "<unplaceable>"
			} else {
				res.Output = machineID
			}
		}
	case "complete":
		res.Err = r.Scheduler.JobCompleted(op.ID)
		if res.Err == nil {
			res.Output = "ok"
		}
	}
	if res.Err != nil {
		log.Printf("[harness.Runner] [apply] Operation %s on line %d failed: %v\n", op.Kind, op.Line, res.Err)
	}
	return res
}
