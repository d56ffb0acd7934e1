// Package cache keeps lint results keyed by content and settings, in an
// in-memory LRU backed by an optional msgpack disk store.
package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Store looks entries up in memory first and on disk second.
type Store struct {
	mem  *lru.Cache[Digest, *Entry]
	disk *DiskCache

	hits   atomic.Int64
	misses atomic.Int64
}

// Options configure a Store.
type Options struct {
	// Entries bounds the in-memory LRU; values below 1 use 1024.
	Entries int
	// Disk enables the disk store under Dir.
	Disk bool
	Dir  string
}

// Open builds a Store.
func Open(opts Options) (*Store, error) {
	size := opts.Entries
	if size < 1 {
		size = 1024
	}
	mem, err := lru.New[Digest, *Entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	s := &Store{mem: mem}
	if opts.Disk {
		disk, err := OpenDiskCache(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		s.disk = disk
	}
	return s, nil
}

// Get returns the entry for key. Disk hits are promoted into memory; an
// unreadable disk entry is a miss.
func (s *Store) Get(key Digest) (*Entry, bool) {
	if s == nil {
		return nil, false
	}
	if e, ok := s.mem.Get(key); ok {
		s.hits.Add(1)
		return e, true
	}
	if e, ok, err := s.disk.Get(key); err == nil && ok {
		s.mem.Add(key, e)
		s.hits.Add(1)
		return e, true
	}
	s.misses.Add(1)
	return nil, false
}

// Put stores e in memory and, when enabled, on disk.
func (s *Store) Put(key Digest, e *Entry) error {
	if s == nil {
		return nil
	}
	s.mem.Add(key, e)
	return s.disk.Put(key, e)
}

// Clear drops everything, on disk too.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mem.Purge()
	return s.disk.DropAll()
}

// Dir is the disk directory, empty without a disk store.
func (s *Store) Dir() string {
	if s == nil || s.disk == nil {
		return ""
	}
	return s.disk.Dir()
}

// Stats returns hit and miss counters.
func (s *Store) Stats() (hits, misses int64) {
	if s == nil {
		return 0, 0
	}
	return s.hits.Load(), s.misses.Load()
}
