package databank

import "sync"

// Global databank instance and initialization guard.
var (
	globalDatabank *Databank
	globalOnce     sync.Once
)

// Global returns the process-wide databank.
// Creates one over the bundled catalog and data on first call if InitGlobal
// has not been called. The returned databank loads lazily.
func Global() *Databank {
	globalOnce.Do(func() {
		globalDatabank = New()
	})
	return globalDatabank
}

// InitGlobal installs d as the process-wide databank.
// Must be called before any call to Global() to take effect.
// Safe for concurrent use but only the first call has any effect.
func InitGlobal(d *Databank) {
	globalOnce.Do(func() {
		globalDatabank = d
	})
}

// ResetGlobal clears the process-wide databank for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalDatabank = nil
}
