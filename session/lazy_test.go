package session

import (
	"errors"
	"testing"
)

type handle struct{ id int }

func TestPeekBeforeCreate(t *testing.T) {
	calls := 0
	l := NewLazy(func() (*handle, error) {
		calls++
		return &handle{id: calls}, nil
	})

	if h, ok := l.Peek(); ok || h != nil {
		t.Fatalf("Peek() = (%v, %v) before creation, want (nil, false)", h, ok)
	}
	if calls != 0 {
		t.Fatal("Peek() created the instance")
	}

	h1, err := l.GetOrCreate()
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := l.GetOrCreate()
	if h1 != h2 || calls != 1 {
		t.Errorf("GetOrCreate() created %d instances, want 1", calls)
	}

	if h, ok := l.Peek(); !ok || h != h1 {
		t.Errorf("Peek() = (%v, %v), want the created instance", h, ok)
	}
}

func TestCreateFailureNotRemembered(t *testing.T) {
	fail := true
	l := NewLazy(func() (*handle, error) {
		if fail {
			return nil, errors.New("no display")
		}
		return &handle{}, nil
	})

	if _, err := l.GetOrCreate(); err == nil {
		t.Fatal("GetOrCreate() error = nil, want failure")
	}
	if _, ok := l.Peek(); ok {
		t.Fatal("failed creation left an instance")
	}

	fail = false
	if _, err := l.GetOrCreate(); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestRelease(t *testing.T) {
	l := NewLazy(func() (*handle, error) { return &handle{id: 7}, nil })

	// Releasing before creation is a no-op.
	l.Release(func(*handle) { t.Error("release called for absent instance") })

	h, _ := l.GetOrCreate()
	var released *handle
	l.Release(func(v *handle) { released = v })
	if released != h {
		t.Errorf("released %v, want %v", released, h)
	}
	if _, ok := l.Peek(); ok {
		t.Error("instance still present after Release")
	}
}
