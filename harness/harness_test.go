package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasilii314/scheduler/scheduler"
)

const scenario = `
# two machines, three jobs
add-machine m1 gpu,ssd
add-machine m2 gpu

assign j1 gpu 0
assign j2 ssd 0
assign j3 tpu 0
complete j1
`

func TestRunnerScenario(t *testing.T) {
	r := New(scheduler.New())
	require.NoError(t, r.Load(strings.NewReader(scenario)))
	require.Equal(t, 6, r.Pending.Len())

	results := r.Run()
	require.Len(t, results, 6)
	for _, res := range results {
		require.NoError(t, res.Err)
	}
	require.Equal(t, "ok", results[0].Output)
	require.Equal(t, "ok", results[1].Output)
	require.Equal(t, "m1", results[2].Output)
	require.Equal(t, "m1", results[3].Output)
	require.Equal(t, "<unplaceable>", results[4].Output)
	require.Equal(t, "ok", results[5].Output)
	require.Equal(t, 0, r.Pending.Len())
}

func TestRunnerCollectsOperationErrors(t *testing.T) {
	r := New(scheduler.New())
	require.NoError(t, r.Load(strings.NewReader("complete ghost\n")))

	results := r.Run()
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestLoadRejectsUnknownOperation(t *testing.T) {
	r := New(scheduler.New())
	err := r.Load(strings.NewReader("add-machine m1 gpu\nfrobnicate j1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadRejectsBadCriteria(t *testing.T) {
	r := New(scheduler.New())
	err := r.Load(strings.NewReader("assign j1 gpu zero\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "criteria")
}

func TestLoadRejectsWrongArity(t *testing.T) {
	r := New(scheduler.New())
	require.Error(t, r.Load(strings.NewReader("add-machine\n")))
	require.Error(t, r.Load(strings.NewReader("complete j1 extra\n")))
}

func TestParseAssignDefaults(t *testing.T) {
	op, err := parseOp(1, "assign j1")
	require.NoError(t, err)
	require.Equal(t, "j1", op.ID)
	require.Empty(t, op.Caps)
	require.Equal(t, 0, op.Criteria)

	op, err = parseOp(2, "assign j2 gpu,ssd 1")
	require.NoError(t, err)
	require.Equal(t, []string{"gpu", "ssd"}, op.Caps)
	require.Equal(t, 1, op.Criteria)
}
