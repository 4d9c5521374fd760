package draft

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryValues(l *TrackedList[string]) []string {
	entries := l.Entries()
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

func TestPushPreservesInsertionOrder(t *testing.T) {
	l := NewTrackedList[string]()
	l.Push("a")
	l.Push("b")
	l.Push("c")

	assert.Equal(t, []string{"a", "b", "c"}, entryValues(l))
	assert.Equal(t, 3, l.Len())
}

func TestRemoveKeepsSurvivorOrder(t *testing.T) {
	l := NewTrackedList[string]()
	a := l.Push("a")
	l.Push("b")
	c := l.Push("c")
	l.Push("d")

	l.Remove(c)
	assert.Equal(t, []string{"a", "b", "d"}, entryValues(l))

	l.Remove(a)
	assert.Equal(t, []string{"b", "d"}, entryValues(l))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	l := NewTrackedList[string]()
	l.Push("a")

	notified := 0
	l.Subscribe(func() { notified++ })

	l.Remove(uuid.New())
	assert.Equal(t, []string{"a"}, entryValues(l))
	assert.Zero(t, notified)
}

func TestUpdateAbsentIsNoop(t *testing.T) {
	l := NewTrackedList[string]()
	l.Push("a")

	l.Update(uuid.New(), func(v *string) { *v = "mutated" })
	assert.Equal(t, []string{"a"}, entryValues(l))
}

// Any interleaving of pushes and removals must leave the survivors in
// their original insertion order.
func TestRandomisedInsertRemoveOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		l := NewTrackedList[int]()
		var ids []uuid.UUID
		var want []int

		next := 0
		for op := 0; op < 100; op++ {
			if len(want) == 0 || rng.Intn(3) > 0 {
				ids = append(ids, l.Push(next))
				want = append(want, next)
				next++
			} else {
				victim := rng.Intn(len(want))
				l.Remove(ids[victim])
				ids = append(ids[:victim], ids[victim+1:]...)
				want = append(want[:victim], want[victim+1:]...)
			}
		}

		entries := l.Entries()
		require.Len(t, entries, len(want))
		for i, e := range entries {
			assert.Equal(t, want[i], e.Value)
			assert.Equal(t, ids[i], e.ID, "identities stay stable across removals")
		}
	}
}

func TestIdentityNotReused(t *testing.T) {
	l := NewTrackedList[string]()
	seen := map[uuid.UUID]bool{}
	for i := 0; i < 100; i++ {
		id := l.Push("x")
		require.False(t, seen[id])
		seen[id] = true
		l.Remove(id)
	}
}

func TestSubscribeFiresOncePerMutation(t *testing.T) {
	l := NewTrackedList[string]()
	notified := 0
	l.Subscribe(func() { notified++ })

	id := l.Push("a")
	assert.Equal(t, 1, notified)

	l.Update(id, func(v *string) { *v = "b" })
	assert.Equal(t, 2, notified)

	l.Remove(id)
	assert.Equal(t, 3, notified)
}

func TestEntryObserversAreIndependent(t *testing.T) {
	l := NewTrackedList[string]()
	a := l.Push("a")
	b := l.Push("b")

	var aSeen, bSeen []string
	l.Observe(a, func(v string) { aSeen = append(aSeen, v) })
	l.Observe(b, func(v string) { bSeen = append(bSeen, v) })

	l.Update(a, func(v *string) { *v = "a2" })
	l.Update(a, func(v *string) { *v = "a3" })

	assert.Equal(t, []string{"a2", "a3"}, aSeen)
	assert.Empty(t, bSeen, "mutating one entry must not fire another entry's observers")
}

func TestEntriesIsASnapshot(t *testing.T) {
	l := NewTrackedList[string]()
	id := l.Push("a")

	snapshot := l.Entries()
	l.Update(id, func(v *string) { *v = "changed" })

	assert.Equal(t, "a", snapshot[0].Value)
}
