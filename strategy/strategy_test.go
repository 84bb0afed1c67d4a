package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasilii314/scheduler/capability"
	"github.com/vasilii314/scheduler/machine"
)

func testMachine(id string, unfinished, finished int) *machine.Machine {
	m := machine.New(id, capability.NormalizeSet(nil))
	m.UnfinishedCount = unfinished
	m.FinishedCount = finished
	return m
}

func TestLeastUnfinishedPicksMinimum(t *testing.T) {
	s := &LeastUnfinished{}
	candidates := []*machine.Machine{
		testMachine("m1", 3, 0),
		testMachine("m2", 1, 0),
		testMachine("m3", 2, 0),
	}
	require.Equal(t, "m2", s.Select(candidates).ID)
}

func TestLeastUnfinishedTieBreaksOnID(t *testing.T) {
	s := &LeastUnfinished{}
	candidates := []*machine.Machine{
		testMachine("m2", 1, 5),
		testMachine("m1", 1, 0),
		testMachine("m3", 1, 9),
	}
	require.Equal(t, "m1", s.Select(candidates).ID)
}

func TestMostFinishedPicksMaximum(t *testing.T) {
	s := &MostFinished{}
	candidates := []*machine.Machine{
		testMachine("m1", 0, 2),
		testMachine("m2", 0, 7),
		testMachine("m3", 0, 4),
	}
	require.Equal(t, "m2", s.Select(candidates).ID)
}

func TestMostFinishedTieBreaksOnID(t *testing.T) {
	s := &MostFinished{}
	candidates := []*machine.Machine{
		testMachine("m3", 0, 4),
		testMachine("m2", 9, 4),
		testMachine("m4", 0, 4),
	}
	require.Equal(t, "m2", s.Select(candidates).ID)
}

func TestSingleCandidate(t *testing.T) {
	candidates := []*machine.Machine{testMachine("only", 5, 5)}
	require.Equal(t, "only", (&LeastUnfinished{}).Select(candidates).ID)
	require.Equal(t, "only", (&MostFinished{}).Select(candidates).ID)
}

func TestForCriteria(t *testing.T) {
	require.Equal(t, LeastUnfinishedType, ForCriteria(CriteriaLeastUnfinished).Name())
	require.Equal(t, MostFinishedType, ForCriteria(CriteriaMostFinished).Name())
}

func TestForCriteriaUnknownFallsBack(t *testing.T) {
	require.Equal(t, LeastUnfinishedType, ForCriteria(42).Name())
	require.Equal(t, LeastUnfinishedType, ForCriteria(-1).Name())
}
