package stub

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"brandkit/internal/branding"
)

// TODO(stub-reload): rehydrate spilled logo files from the data dir on startup.

// Store keeps at most one asset per type; the latest write wins. Logo bytes
// optionally spill to a data directory.
type Store struct {
	mu      sync.Mutex
	assets  map[branding.AssetType]*stored
	dataDir string
}

type stored struct {
	asset    branding.Asset
	file     []byte
	diskName string
}

// NewStore creates a store. An empty dataDir keeps everything in memory.
func NewStore(dataDir string) (*Store, error) {
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}
	return &Store{
		assets:  make(map[branding.AssetType]*stored),
		dataDir: dataDir,
	}, nil
}

// Put stores an asset, replacing any previous one for its type. File bytes,
// when present, are written under a generated name so uploads can never
// collide or traverse paths.
func (s *Store) Put(a branding.Asset, file []byte) (branding.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &stored{asset: a, file: file}
	if file != nil {
		entry.diskName = "a--" + uuid.New().String() + filepath.Ext(a.FileName)
		if s.dataDir != "" {
			if err := os.WriteFile(filepath.Join(s.dataDir, entry.diskName), file, 0600); err != nil {
				return branding.Asset{}, fmt.Errorf("failed to save file: %w", err)
			}
		}
	}

	if prev, ok := s.assets[a.AssetType]; ok {
		s.removeSpilled(prev)
	}
	s.assets[a.AssetType] = entry
	return entry.asset, nil
}

// Get returns the asset and any file bytes for a type.
func (s *Store) Get(t branding.AssetType) (branding.Asset, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.assets[t]
	if !ok {
		return branding.Asset{}, nil, false
	}
	return entry.asset, entry.file, true
}

// Delete removes the asset for a type. Reports whether one existed.
func (s *Store) Delete(t branding.AssetType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.assets[t]
	if !ok {
		return false
	}
	s.removeSpilled(entry)
	delete(s.assets, t)
	return true
}

// List returns every stored asset in type order.
func (s *Store) List() []branding.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]branding.Asset, 0, len(s.assets))
	for _, t := range branding.AllTypes() {
		if entry, ok := s.assets[t]; ok {
			out = append(out, entry.asset)
		}
	}
	return out
}

func (s *Store) removeSpilled(entry *stored) {
	if s.dataDir != "" && entry.diskName != "" {
		os.Remove(filepath.Join(s.dataDir, entry.diskName))
	}
}
