package snapshot

import (
	"context"

	"gateway-config/internal/configuration"
	"gateway-config/internal/model"
)

// Mock implements Store for testing.
// Each method can be configured via function fields.
type Mock struct {
	GetFunc  func(ctx context.Context, merchantID string) (*configuration.Configuration, error)
	ListFunc func(ctx context.Context) []string
}

// Get calls the configured GetFunc or returns a not-found error.
func (m *Mock) Get(ctx context.Context, merchantID string) (*configuration.Configuration, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, merchantID)
	}
	return nil, model.NewNotFoundError("merchant " + merchantID)
}

// List calls the configured ListFunc or returns an empty list.
func (m *Mock) List(ctx context.Context) []string {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []string{}
}

// Verify Mock implements Store interface at compile time.
var _ Store = (*Mock)(nil)
