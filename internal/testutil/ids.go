package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates predictable import ids ("<prefix>-0001", ...).
//
// This enables golden comparison of output that embeds import ids.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	seq    int
}

// NewSequentialIDs creates a generator. An empty prefix becomes "import".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "import"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next id. Implements store.IDGenerator.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%04d", g.prefix, g.seq)
}

// Reset restarts the sequence so the next id ends in 0001.
func (g *SequentialIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
