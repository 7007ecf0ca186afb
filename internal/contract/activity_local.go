package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/agoramind/govscope/schema"
)

// LocalActivitySource loads a governance activity export from a JSON file on
// disk. A path of "-" reads from stdin.
type LocalActivitySource struct {
	Path string
}

// NewLocalActivitySource returns a source that reads the given path.
func NewLocalActivitySource(path string) *LocalActivitySource {
	return &LocalActivitySource{Path: path}
}

// Load reads and decodes the activity export. Structural problems in the
// JSON are errors; malformed field values like bad timestamps are left for
// the analysis layer to tolerate.
func (s *LocalActivitySource) Load(ctx context.Context) (*schema.ActivityData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, fmt.Errorf("activity path is required")
	}

	var raw []byte
	var err error
	if s.Path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read activity export: %w", err)
	}

	var data schema.ActivityData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode activity export: %w", err)
	}
	return &data, nil
}
