// Package cache implements the persistent accessory cache: a single JSON
// document mapping television serial numbers to their last-known address,
// specs, and application list. The cache is what lets a previously seen set
// complete setup while it is unreachable or in standby.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/colombif/vieramatic/pkg/models"
)

// Data is the last observed address/specs pair for one television.
type Data struct {
	IPAddress string             `json:"ipAddress"`
	Specs     models.DeviceSpecs `json:"specs"`
}

// Entry is the cached state for one television, keyed by serial number in
// the backing document.
type Entry struct {
	Data Data         `json:"data"`
	Apps []models.App `json:"apps,omitempty"`
}

// Empty reports whether the entry has never been populated.
func (e Entry) Empty() bool {
	return e.Data == (Data{}) && len(e.Apps) == 0
}

// Store is the in-memory mirror of the cache document. It is constructed
// once at process start and shared by every concurrent device pipeline; all
// access is serialized internally, since pipelines scan the whole map by
// address while first-run setups write entries back.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries map[string]Entry
	logger  *zap.Logger
}

// New loads the document at path. A missing or unparsable document degrades
// to an empty mapping with a warning: a corrupt cache means "no cached
// devices known", never a refusal to start.
func New(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]Entry),
		logger:  logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("accessory cache unreadable, starting empty",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return s
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.logger.Warn("accessory cache corrupt, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		s.entries = make(map[string]Entry)
		return s
	}

	s.logger.Info("accessory cache loaded",
		zap.String("path", path),
		zap.Int("entries", len(s.entries)),
	)
	return s
}

// Get returns the entry for serial, materializing an empty one in memory on
// first access. Materialization alone never touches the disk; only Save does.
func (s *Store) Get(serial string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[serial]
	if !ok {
		s.entries[serial] = Entry{}
	}
	return e
}

// Put replaces the in-memory entry for serial. Call Save afterwards to make
// the change durable; un-saved mutations are lost on restart.
func (s *Store) Put(serial string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[serial] = e
}

// SpecsForAddress scans every entry for one whose stored address matches ip
// and returns its specs. The scan is linear on purpose: before a set's
// serial number is known the address is the only handle available, and an
// address is not a stable key (DHCP can move it between sets), so the store
// stays keyed by serial.
func (s *Store) SpecsForAddress(ip string) (models.DeviceSpecs, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.Data.IPAddress == ip && !e.Data.Specs.Empty() {
			return e.Data.Specs, true
		}
	}
	return models.DeviceSpecs{}, false
}

// Len reports the number of entries currently in memory.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns a copy of all entries, for read-only inspection.
func (s *Store) Snapshot() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Entry, len(s.entries))
	for serial, e := range s.entries {
		out[serial] = e
	}
	return out
}

// Save serializes the full mapping and atomically replaces the backing
// document: write to a temp file in the same directory, then rename. A crash
// mid-save leaves the previous document intact. The store lock is held for
// the whole operation so concurrent first-run saves cannot interleave and
// regress the document.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal accessory cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".accessories-*.json")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace accessory cache %q: %w", s.path, err)
	}

	s.logger.Debug("accessory cache saved",
		zap.String("path", s.path),
		zap.Int("entries", len(s.entries)),
	)
	return nil
}
