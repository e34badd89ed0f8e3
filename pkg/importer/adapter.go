package importer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hazyhaar/tifosi-import/pkg/sheet"
)

// Adapter turns one source spreadsheet into statements.
type Adapter interface {
	// ID returns the unique identifier of this adapter (e.g. "marque").
	ID() string
	// Description returns a human-readable description.
	Description() string
	// DefaultFile returns the file name read when the configuration names none.
	DefaultFile() string
	// Columns returns the columns the source must have.
	Columns() []string
	// Step orders adapters: sources that others depend on come first.
	Step() int
	// Emit writes the statements for t into run.
	Emit(run *Run, t *sheet.Table) error
}

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// Register adds an adapter to the global registry.
func Register(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	adapters[a.ID()] = a
}

// Get returns a registered adapter by ID, or an error if not found.
func Get(id string) (Adapter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[id]
	if !ok {
		return nil, fmt.Errorf("unknown source: %q", id)
	}
	return a, nil
}

// All returns all registered adapters in step order.
func All() []Adapter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Adapter, 0, len(adapters))
	for _, a := range adapters {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Step() != result[j].Step() {
			return result[i].Step() < result[j].Step()
		}
		return result[i].ID() < result[j].ID()
	})
	return result
}
