package draft

// Store is a mutable cell with subscribe/notify, the explicit stand-in for
// a framework-managed reactive signal. Owned by a single controller; not
// safe for concurrent use.
type Store[T any] struct {
	value       T
	subscribers []func(T)
}

func NewStore[T any](value T) *Store[T] {
	return &Store[T]{value: value}
}

func (s *Store[T]) Get() T {
	return s.value
}

func (s *Store[T]) Set(value T) {
	s.value = value
	s.notify()
}

func (s *Store[T]) Update(mutate func(*T)) {
	mutate(&s.value)
	s.notify()
}

func (s *Store[T]) Subscribe(fn func(T)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store[T]) notify() {
	for _, fn := range s.subscribers {
		fn(s.value)
	}
}
