package ggres

import (
	"sync"

	// Registers the software backend so backend.Default always has one.
	_ "github.com/gogpu/ggres/backend/soft"
)

var (
	defaultMu  sync.Mutex
	defaultMgr *Manager
)

// Default returns the process-wide manager, creating it on first use with
// ConfigFromEnv and the default backend.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultMgr == nil {
		defaultMgr = New(WithConfig(ConfigFromEnv()))
	}
	return defaultMgr
}

// Shutdown closes the process-wide manager and forgets it. The next call
// to Default creates a fresh one. Shutdown is a no-op if Default was never
// called.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultMgr == nil {
		return
	}
	defaultMgr.Close()
	defaultMgr = nil
}
