// Package snapshot holds the merchant configuration documents the inspector
// serves. Documents are parsed once when the store is built.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"gateway-config/internal/configuration"
	"gateway-config/internal/model"
)

// Store looks up parsed merchant configurations.
type Store interface {
	// Get returns the configuration for merchantID, or a NOT_FOUND *model.APIError.
	Get(ctx context.Context, merchantID string) (*configuration.Configuration, error)

	// List returns the known merchant IDs in sorted order.
	List(ctx context.Context) []string
}

// MemoryStore is a read-only Store over snapshots parsed at construction.
// Safe for concurrent use.
type MemoryStore struct {
	configs map[string]*configuration.Configuration
	ids     []string
}

// NewMemoryStore parses every raw document. The first failure aborts with an
// error naming the merchant, so a bad snapshot never reaches serving.
func NewMemoryStore(raw map[string]json.RawMessage) (*MemoryStore, error) {
	s := &MemoryStore{
		configs: make(map[string]*configuration.Configuration, len(raw)),
		ids:     make([]string, 0, len(raw)),
	}
	for id, doc := range raw {
		cfg, err := configuration.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", id, err)
		}
		s.configs[id] = cfg
		s.ids = append(s.ids, id)
	}
	slices.Sort(s.ids)
	return s, nil
}

func (s *MemoryStore) Get(_ context.Context, merchantID string) (*configuration.Configuration, error) {
	cfg, ok := s.configs[merchantID]
	if !ok {
		return nil, model.NewNotFoundError("merchant " + merchantID)
	}
	return cfg, nil
}

func (s *MemoryStore) List(_ context.Context) []string {
	return slices.Clone(s.ids)
}

var _ Store = (*MemoryStore)(nil)
