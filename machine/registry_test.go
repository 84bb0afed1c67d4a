package machine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasilii314/scheduler/capability"
)

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("m1", []string{"GPU", " ssd "}))

	m, err := r.Get("m1")
	require.NoError(t, err)
	require.True(t, m.Capabilities.Contains("gpu"))
	require.True(t, m.Capabilities.Contains("ssd"))
	require.Equal(t, 0, m.UnfinishedCount)
	require.Equal(t, 0, m.FinishedCount)
}

func TestRegistryAddBlankID(t *testing.T) {
	r := NewRegistry()
	require.ErrorIs(t, r.Add("", nil), ErrBlankID)
	require.ErrorIs(t, r.Add("   ", nil), ErrBlankID)
}

func TestRegistryAddDuplicateID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("m1", []string{"gpu"}))
	require.ErrorIs(t, r.Add("m1", []string{"ssd"}), ErrDuplicateID)
	// The trimmed id collides as well.
	require.ErrorIs(t, r.Add("  m1 ", nil), ErrDuplicateID)
}

func TestRegistryCandidatesFor(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("m1", []string{"gpu", "ssd"}))
	require.NoError(t, r.Add("m2", []string{"gpu"}))

	candidates := r.CandidatesFor(capability.NormalizeSet([]string{"ssd"}))
	require.Len(t, candidates, 1)
	require.Equal(t, "m1", candidates[0].ID)
	require.True(t, candidates[0].HasCapabilities(capability.NormalizeSet([]string{"ssd"})))
}

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("m1", []string{"gpu"}))
	require.NoError(t, r.IncrementUnfinished("m1"))
	require.NoError(t, r.IncrementUnfinished("m1"))

	m, err := r.Get("m1")
	require.NoError(t, err)
	require.Equal(t, 2, m.UnfinishedCount)

	require.NoError(t, r.CompleteOne("m1"))
	require.Equal(t, 1, m.UnfinishedCount)
	require.Equal(t, 1, m.FinishedCount)
}

func TestRegistryCompleteOneFloorsAtZero(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("m1", nil))
	require.NoError(t, r.CompleteOne("m1"))

	m, err := r.Get("m1")
	require.NoError(t, err)
	require.Equal(t, 0, m.UnfinishedCount)
	require.Equal(t, 1, m.FinishedCount)
}

func TestRegistryCountersUnknownMachine(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.IncrementUnfinished("ghost"))
	require.Error(t, r.CompleteOne("ghost"))
}
