// allocator.go — Hands out table colors one at a time per category.
package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Allocator walks each category's table in order. Unknown requests, and
// requests for an exhausted category, are served from the unknowns table;
// once that is exhausted too, black is returned.
type Allocator struct {
	mu     sync.Mutex
	tables map[Category]Palette
	next   map[Category]int
}

// NewAllocator wraps already loaded tables. Missing categories behave as
// empty tables.
func NewAllocator(tables map[Category]Palette) *Allocator {
	a := &Allocator{
		tables: make(map[Category]Palette, len(tables)),
		next:   make(map[Category]int, len(Categories)),
	}
	for cat, p := range tables {
		a.tables[cat] = p
	}
	return a
}

// LoadAllocator reads every <category>.bin present in dir. At least one
// table must exist; a table that exists but cannot be read is an error.
func LoadAllocator(dir string) (*Allocator, error) {
	tables := make(map[Category]Palette, len(Categories))
	for _, cat := range Categories {
		path := filepath.Join(dir, cat.Filename())
		p, err := ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("skipping %s: %v", cat, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		tables[cat] = p
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no color tables found in %s", dir)
	}
	return NewAllocator(tables), nil
}

// Next returns the next unused color for cat. ok is false when the color is
// a fallback rather than one from cat's own table.
func (a *Allocator) Next(cat Category) (c Color, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cat != Unknown {
		if c, found := a.take(cat); found {
			return c, true
		}
		log.Warn("no %s colors left, falling back to unknowns", cat)
	}

	if c, found := a.take(Unknown); found {
		return c, cat == Unknown
	}
	log.Warn("no unknowns colors left")
	return Color{}, false
}

func (a *Allocator) take(cat Category) (Color, bool) {
	i := a.next[cat]
	t := a.tables[cat]
	if i >= len(t) {
		return Color{}, false
	}
	a.next[cat] = i + 1
	return t[i], true
}

// Set replaces cat's table and rewinds only that category.
func (a *Allocator) Set(cat Category, p Palette) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables[cat] = p
	delete(a.next, cat)
}

// Remaining reports how many colors of cat's own table are unused.
func (a *Allocator) Remaining(cat Category) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.tables[cat]) - a.next[cat]
}

// Reset rewinds one category.
func (a *Allocator) Reset(cat Category) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.next, cat)
}

// ResetAll rewinds every category.
func (a *Allocator) ResetAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.next)
}
