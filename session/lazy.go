// Package session holds process-lifetime resources that exist at most once.
//
// Lazy separates the side-effect-free query (Peek) from the creating path
// (GetOrCreate), so teardown code can ask whether a resource exists without
// ever forcing it into existence.
package session

// Lazy is a lazily created single instance of T.
//
// Lazy is not safe for concurrent use.
type Lazy[T any] struct {
	create func() (T, error)
	value  T
	ok     bool
}

// NewLazy returns a Lazy that builds its value with create on first use.
func NewLazy[T any](create func() (T, error)) *Lazy[T] {
	return &Lazy[T]{create: create}
}

// Peek returns the instance if it has been created. It never creates.
func (l *Lazy[T]) Peek() (T, bool) {
	return l.value, l.ok
}

// GetOrCreate returns the instance, creating it on first call. A failed
// creation is not remembered; the next call tries again.
func (l *Lazy[T]) GetOrCreate() (T, error) {
	if l.ok {
		return l.value, nil
	}
	v, err := l.create()
	if err != nil {
		var zero T
		return zero, err
	}
	l.value, l.ok = v, true
	return v, nil
}

// Release hands the instance to release, if one exists, and forgets it.
// Releasing an absent instance is a no-op.
func (l *Lazy[T]) Release(release func(T)) {
	if !l.ok {
		return
	}
	v := l.value
	var zero T
	l.value, l.ok = zero, false
	if release != nil {
		release(v)
	}
}
