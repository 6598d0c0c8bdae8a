package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces import ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator produces time-ordered UUIDv7 ids, so import ids sort in
// the order imports happened. It is safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string. It panics if the random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator hands out a fixed list of ids in order. Tests use it to
// pin import ids in stored rows and command output.
type FixedGenerator struct {
	mu   sync.Mutex
	ids  []string
	next int
}

// NewFixedGenerator returns a generator over ids.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next id, panicking when the list runs out.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next == len(g.ids) {
		panic(fmt.Sprintf("store: FixedGenerator exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.next]
	g.next++
	return id
}
