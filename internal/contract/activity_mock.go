package contract

import (
	"context"

	"github.com/agoramind/govscope/schema"
)

// MockActivitySource returns canned data for tests.
type MockActivitySource struct {
	Data *schema.ActivityData
	Err  error
}

// Load returns the canned data or error.
func (s *MockActivitySource) Load(_ context.Context) (*schema.ActivityData, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Data, nil
}
