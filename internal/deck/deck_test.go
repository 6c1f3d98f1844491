package deck

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string][]string

func (m mapSource) Tasks(category string) []string { return m[category] }

func seeded() *rand.Rand { return rand.New(rand.NewSource(42)) }

func newDeck(t *testing.T, pool []string, limit int) *Deck {
	t.Helper()
	d := New(limit)
	d.Initialize("test", mapSource{"test": pool}, seeded())
	return d
}

func TestNew_StartsLoading(t *testing.T) {
	d := New(5)
	assert.Equal(t, StateLoading, d.State())
	assert.Equal(t, OutcomeNone, d.Outcome())
	assert.False(t, d.Complete(), "complete before initialize")
	assert.False(t, d.Defer(), "defer before initialize")
}

func TestNew_NonPositiveLimitUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultDailyLimit, New(0).Limit())
	assert.Equal(t, DefaultDailyLimit, New(-3).Limit())
	assert.Equal(t, 2, New(2).Limit())
}

func TestInitialize_SampleSize(t *testing.T) {
	tests := []struct {
		name string
		pool []string
		want int
	}{
		{"larger than limit", []string{"A", "B", "C", "D", "E", "F", "G"}, 5},
		{"equal to limit", []string{"A", "B", "C", "D", "E"}, 5},
		{"smaller than limit", []string{"A", "B"}, 2},
		{"single", []string{"X"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeck(t, tt.pool, 5)
			require.Equal(t, StateActive, d.State())
			assert.Equal(t, tt.want, d.Remaining())
			assert.Equal(t, tt.want, d.Drawn())
			assert.Equal(t, 0, d.Completed())

			snap := d.Snapshot()
			seen := map[string]bool{}
			for _, task := range snap.Tasks {
				assert.Contains(t, tt.pool, task)
				assert.False(t, seen[task], "duplicate task %q", task)
				seen[task] = true
			}
			assert.Equal(t, 0, snap.CurrentIndex)
		})
	}
}

func TestInitialize_EmptyPool(t *testing.T) {
	d := newDeck(t, nil, 5)
	assert.Equal(t, StateEmpty, d.State())
	assert.Equal(t, OutcomeNoTasks, d.Outcome())
	_, ok := d.Current()
	assert.False(t, ok)
	assert.False(t, d.Complete())
	assert.False(t, d.Defer())
	assert.Equal(t, 0, d.Completed())
}

func TestInitialize_UnknownCategoryAndNilSource(t *testing.T) {
	d := New(5)
	d.Initialize("missing", mapSource{"other": {"A"}}, seeded())
	assert.Equal(t, StateEmpty, d.State())

	d = New(5)
	d.Initialize("missing", nil, nil)
	assert.Equal(t, StateEmpty, d.State())
}

func TestInitialize_DoesNotMutatePool(t *testing.T) {
	pool := []string{"A", "B", "C", "D", "E", "F"}
	orig := slices.Clone(pool)
	d := newDeck(t, pool, 5)
	for d.Complete() {
	}
	assert.Equal(t, orig, pool)
}

func TestInitialize_ReshufflesOnReentry(t *testing.T) {
	pool := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	src := mapSource{"c": pool}
	rng := seeded()

	d := New(5)
	d.Initialize("c", src, rng)
	d.Complete()
	d.Complete()
	require.Equal(t, 2, d.Completed())

	d.Initialize("c", src, rng)
	assert.Equal(t, StateActive, d.State())
	assert.Equal(t, 0, d.Completed())
	assert.Equal(t, 5, d.Remaining())
}

func TestDefer_RotatesCurrentToTail(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C", "D", "E", "F"}, 5)
	before := d.Snapshot()

	require.True(t, d.Defer())
	after := d.Snapshot()

	assert.Equal(t, before.Completed, after.Completed)
	assert.Len(t, after.Tasks, len(before.Tasks))
	assert.Equal(t, before.Tasks[0], after.Tasks[len(after.Tasks)-1])
	assert.Equal(t, before.Tasks[1], after.Current)
	assert.ElementsMatch(t, before.Tasks, after.Tasks)
}

func TestDefer_FullRotationRestoresOrder(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C"}, 5)
	before := d.Snapshot().Tasks
	for range before {
		require.True(t, d.Defer())
	}
	assert.Equal(t, before, d.Snapshot().Tasks)
}

func TestDefer_SingleTask(t *testing.T) {
	d := newDeck(t, []string{"X"}, 5)
	require.True(t, d.Defer())
	cur, ok := d.Current()
	assert.True(t, ok)
	assert.Equal(t, "X", cur)
	assert.Equal(t, StateActive, d.State())
}

func TestComplete_ShrinksDeckAndCounts(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C", "D", "E", "F"}, 5)
	for i := 1; i <= 5; i++ {
		before := d.Remaining()
		cur, _ := d.Current()
		require.True(t, d.Complete(), "complete #%d", i)
		assert.Equal(t, before-1, d.Remaining())
		assert.Equal(t, i, d.Completed())
		assert.NotContains(t, d.Snapshot().Tasks, cur)
	}
	assert.Equal(t, StateQuotaMet, d.State())
	assert.Equal(t, OutcomeQuotaMet, d.Outcome())
	assert.Equal(t, 0, d.Remaining())
}

func TestComplete_NoOpAtQuota(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C", "D", "E", "F"}, 5)
	for d.Complete() {
	}
	before := d.Snapshot()
	assert.False(t, d.Complete())
	assert.False(t, d.Defer())
	assert.Equal(t, before, d.Snapshot())
	assert.Equal(t, 5, d.Completed())
}

func TestComplete_InterleavedWithDefer(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C", "D", "E", "F", "G"}, 5)
	ops := 0
	for d.State() == StateActive {
		if ops%2 == 0 {
			require.True(t, d.Defer())
		} else {
			require.True(t, d.Complete())
		}
		ops++
		assert.LessOrEqual(t, d.Completed(), d.Limit())
		if d.Remaining() > 0 {
			assert.Less(t, d.Snapshot().CurrentIndex, d.Remaining())
		}
	}
	assert.Equal(t, StateQuotaMet, d.State())
	assert.Equal(t, 0, d.Remaining())
}

func TestScenario_SixTaskPool(t *testing.T) {
	pool := []string{"A", "B", "C", "D", "E", "F"}
	d := newDeck(t, pool, 5)

	snap := d.Snapshot()
	require.Len(t, snap.Tasks, 5)
	first := snap.Current

	require.True(t, d.Defer())
	snap = d.Snapshot()
	assert.Equal(t, first, snap.Tasks[4])
	assert.Equal(t, 0, snap.Completed)

	for range 5 {
		require.True(t, d.Complete())
	}
	assert.Equal(t, 5, d.Completed())
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, StateQuotaMet, d.State())
}

func TestScenario_SingleTaskPoolRunsOut(t *testing.T) {
	d := newDeck(t, []string{"X"}, 5)
	require.Equal(t, []string{"X"}, d.Snapshot().Tasks)

	require.True(t, d.Complete())
	assert.Equal(t, 1, d.Completed())
	assert.Equal(t, StateEmpty, d.State())
	assert.NotEqual(t, StateQuotaMet, d.State())
	assert.Equal(t, OutcomeRanOut, d.Outcome())
	assert.False(t, d.Complete())
}

func TestScenario_PoolEqualsLimitOfOne(t *testing.T) {
	d := newDeck(t, []string{"X", "Y"}, 1)
	require.Equal(t, 1, d.Remaining())
	require.True(t, d.Complete())
	assert.Equal(t, StateQuotaMet, d.State(), "quota wins when the last task meets it")
}

func TestSnapshot_IsACopy(t *testing.T) {
	d := newDeck(t, []string{"A", "B", "C"}, 5)
	snap := d.Snapshot()
	snap.Tasks[0] = "mutated"
	cur, _ := d.Current()
	assert.NotEqual(t, "mutated", cur)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "quota_met", StateQuotaMet.String())
	assert.True(t, StateEmpty.Terminal())
	assert.True(t, StateQuotaMet.Terminal())
	assert.False(t, StateActive.Terminal())
	assert.Equal(t, "ran_out", OutcomeRanOut.String())
}
