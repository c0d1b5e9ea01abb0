// Package filestore implements the repository contract over flat JSON
// documents, one array file per collection under a data directory.
// Every mutation is a full read-modify-write of the collection
// document. Writes within the process are serialized through a
// per-collection mutex; there is no cross-process locking and no
// optimistic concurrency control, so the last writer wins. That is
// acceptable only for the intended single-process, low-concurrency
// admin deployment.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"foodtruck/internal/repository"
)

const (
	trucksFile   = "products.json"
	quotesFile   = "quotes.json"
	messagesFile = "messages.json"
	usersFile    = "users.json"
)

// Store bundles the file-backed repositories sharing one data directory.
type Store struct {
	trucks   *TruckStore
	quotes   *QuoteStore
	messages *MessageStore
	users    *UserStore
}

// Open prepares a store rooted at dir. The directory and collection
// files are created lazily on first access.
func Open(dir string) *Store {
	return &Store{
		trucks:   newTruckStore(dir),
		quotes:   newQuoteStore(dir),
		messages: newMessageStore(dir),
		users:    newUserStore(dir),
	}
}

// Trucks returns the truck collection.
func (s *Store) Trucks() repository.TruckRepository { return s.trucks }

// Quotes returns the quote request collection.
func (s *Store) Quotes() repository.QuoteRepository { return s.quotes }

// Messages returns the contact message collection.
func (s *Store) Messages() repository.MessageRepository { return s.messages }

// Users returns the admin user collection.
func (s *Store) Users() repository.UserRepository { return s.users }

// collection is one JSON array document on disk.
type collection[T any] struct {
	mu   sync.Mutex
	path string
	seed func() []T
}

func newCollection[T any](dir, name string, seed func() []T) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name), seed: seed}
}

// ensure creates the directory and seeds the file if it does not exist.
func (c *collection[T]) ensure() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	items := []T{}
	if c.seed != nil {
		items = c.seed()
	}
	return c.writeLocked(items)
}

func (c *collection[T]) readLocked() ([]T, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(c.path), err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

func (c *collection[T]) writeLocked(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(c.path), err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(c.path), err)
	}
	return nil
}

// view runs fn against a snapshot of the collection.
func (c *collection[T]) view(fn func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readLocked()
	if err != nil {
		return err
	}
	return fn(items)
}

// update runs fn inside the read-modify-write cycle and persists the
// slice fn returns.
func (c *collection[T]) update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readLocked()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.writeLocked(items)
}

// nextID assigns one more than the current maximum id. Deleting the
// highest record and creating another reuses its id.
func nextID[T any](items []T, id func(T) uint) uint {
	var max uint
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
