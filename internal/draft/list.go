// Package draft holds the in-memory state of a booking form between first
// render and submission: an observable contact cell and an ordered,
// independently-editable collection of ticket entries.
//
// Everything here is single-owner state. The owning page controller applies
// all mutations; none of the types are safe for concurrent use.
package draft

import "github.com/google/uuid"

// Entry pairs a collection key with a value snapshot, in display order.
type Entry[T any] struct {
	ID    uuid.UUID
	Value T
}

type listEntry[T any] struct {
	value     T
	observers []func(T)
}

// TrackedList is an ordered map with stable generated keys. Insertion order
// is the display order; removing an entry never renumbers the survivors.
// Observers come in two kinds: collection-level subscribers, notified once
// per mutation of any entry, and per-entry observers, notified only when
// that entry's value changes.
type TrackedList[T any] struct {
	order       []uuid.UUID
	entries     map[uuid.UUID]*listEntry[T]
	subscribers []func()
}

func NewTrackedList[T any]() *TrackedList[T] {
	return &TrackedList[T]{
		entries: map[uuid.UUID]*listEntry[T]{},
	}
}

// Push appends a new entry and returns its generated key. Keys are random
// UUIDs, so a key is never reused within a process lifetime.
func (l *TrackedList[T]) Push(value T) uuid.UUID {
	id := uuid.New()
	l.order = append(l.order, id)
	l.entries[id] = &listEntry[T]{value: value}
	l.notify()
	return id
}

// Remove deletes the entry with the given key, preserving the relative
// order of the remaining entries. Removing an absent key is a no-op and
// notifies nobody.
func (l *TrackedList[T]) Remove(id uuid.UUID) {
	if _, ok := l.entries[id]; !ok {
		return
	}
	delete(l.entries, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.notify()
}

// Update applies mutate to the entry with the given key, then notifies the
// entry's own observers and the collection subscribers. Updating an absent
// key is a no-op. Mutating one entry never fires another entry's observers.
func (l *TrackedList[T]) Update(id uuid.UUID, mutate func(*T)) {
	entry, ok := l.entries[id]
	if !ok {
		return
	}
	mutate(&entry.value)
	for _, observe := range entry.observers {
		observe(entry.value)
	}
	l.notify()
}

func (l *TrackedList[T]) Get(id uuid.UUID) (T, bool) {
	entry, ok := l.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return entry.value, true
}

func (l *TrackedList[T]) Len() int {
	return len(l.order)
}

// Entries returns a snapshot of the collection in display order.
func (l *TrackedList[T]) Entries() []Entry[T] {
	snapshot := make([]Entry[T], 0, len(l.order))
	for _, id := range l.order {
		snapshot = append(snapshot, Entry[T]{ID: id, Value: l.entries[id].value})
	}
	return snapshot
}

// Subscribe registers a collection-level subscriber, fired exactly once per
// mutation (push, remove or update of any entry). Aggregate views such as
// counts and totals hang off this hook.
func (l *TrackedList[T]) Subscribe(fn func()) {
	l.subscribers = append(l.subscribers, fn)
}

// Observe registers an observer on a single entry, fired on every Update of
// that entry. Observing an absent key is a no-op.
func (l *TrackedList[T]) Observe(id uuid.UUID, fn func(T)) {
	entry, ok := l.entries[id]
	if !ok {
		return
	}
	entry.observers = append(entry.observers, fn)
}

func (l *TrackedList[T]) notify() {
	for _, fn := range l.subscribers {
		fn()
	}
}
