package ggres

import (
	"testing"

	"github.com/gogpu/ggres/backend"
	"github.com/gogpu/ggres/backend/record"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.backend != nil {
		t.Errorf("default backend = %v, want nil", o.backend)
	}
	if o.config != DefaultConfig() {
		t.Errorf("default config = %+v, want %+v", o.config, DefaultConfig())
	}
}

func TestNewDefaultBackend(t *testing.T) {
	m := New()
	t.Cleanup(m.Close)
	if m.Backend() == nil {
		t.Fatal("Backend() = nil")
	}
	if got := m.Backend().Name(); got != backend.BackendSoftware {
		t.Errorf("Backend().Name() = %q, want %q", got, backend.BackendSoftware)
	}
}

func TestWithOptions(t *testing.T) {
	b := record.New()
	cfg := Config{WindowWidth: 10, WindowHeight: 20, WindowTitle: "x"}
	m := New(WithBackend(b), WithConfig(cfg), WithTypeface(fakeTypeface{}))
	t.Cleanup(m.Close)

	if m.Backend() != b {
		t.Error("WithBackend not applied")
	}
	if m.Config() != cfg {
		t.Errorf("Config() = %+v, want %+v", m.Config(), cfg)
	}
	f, err := m.Font()
	if err != nil {
		t.Fatal(err)
	}
	if f.Family() != (fakeTypeface{}).Family() {
		t.Errorf("WithTypeface not applied: Family() = %q", f.Family())
	}
}
