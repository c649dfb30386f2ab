// Package jsonfile is the default record store: one pretty-printed JSON
// array per collection inside a data directory.
//
// Each collection keeps its records in insertion order plus an id index,
// guarded by a RWMutex. Every write rewrites the whole file through a temp
// file and rename.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// collection is an ordered, id-indexed set of records persisted to path.
type collection[T any] struct {
	name  string
	path  string
	idOf  func(*T) string
	mu    sync.RWMutex
	items []T
	index map[string]int
}

func openCollection[T any](dir, name string, idOf func(*T) string) (*collection[T], error) {
	c := &collection[T]{
		name:  name,
		path:  filepath.Join(dir, name+".json"),
		idOf:  idOf,
		index: make(map[string]int),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *collection[T]) load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		c.items = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode %s: %w", c.path, err)
		}
	}

	c.items = items
	c.reindex()
	return nil
}

func (c *collection[T]) reindex() {
	clear(c.index)
	for i := range c.items {
		c.index[c.idOf(&c.items[i])] = i
	}
}

// flush must be called with mu held for writing.
func (c *collection[T]) flush() error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), "."+c.name+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

// snapshot returns the records for which keep returns true, in order.
func (c *collection[T]) snapshot(keep func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for i := range c.items {
		if keep == nil || keep(&c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *collection[T]) find(match func(*T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if match(&c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// insert appends item unless check rejects the current state.
func (c *collection[T]) insert(item T, check func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if check != nil {
		if err := check(c.items); err != nil {
			return err
		}
	}

	c.items = append(c.items, item)
	c.index[c.idOf(&item)] = len(c.items) - 1
	if err := c.flush(); err != nil {
		c.items = c.items[:len(c.items)-1]
		delete(c.index, c.idOf(&item))
		return err
	}
	return nil
}

// replace overwrites the record with the same id in place. The boolean is
// false when no such record exists.
func (c *collection[T]) replace(item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[c.idOf(&item)]
	if !ok {
		return false, nil
	}
	prev := c.items[i]
	c.items[i] = item
	if err := c.flush(); err != nil {
		c.items[i] = prev
		return true, err
	}
	return true, nil
}

// update applies fn to every record for which it returns true and persists
// once. It returns the number of changed records.
func (c *collection[T]) update(fn func(*T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := append([]T(nil), c.items...)
	n := 0
	for i := range c.items {
		if fn(&c.items[i]) {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	if err := c.flush(); err != nil {
		c.items = prev
		return 0, err
	}
	return n, nil
}

// remove drops every record for which drop returns true.
func (c *collection[T]) remove(drop func(*T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	kept := make([]T, 0, len(c.items))
	for i := range c.items {
		if !drop(&c.items[i]) {
			kept = append(kept, c.items[i])
		}
	}
	n := len(prev) - len(kept)
	if n == 0 {
		return 0, nil
	}

	c.items = kept
	c.reindex()
	if err := c.flush(); err != nil {
		c.items = prev
		c.reindex()
		return 0, err
	}
	return n, nil
}
