// Package timing loads the JSON export produced by the external
// time-tracking integration. Context-switch detection happens upstream;
// this package only decodes the aggregated result.
package timing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/johns/mindsift/internal/focus"
)

// Load reads a timing export file into the focus package's input contract.
func Load(path string) (*focus.TimingData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timing export: %w", err)
	}

	var td focus.TimingData
	if err := json.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("parse timing export: %w", err)
	}

	if td.DataType == "" {
		return nil, fmt.Errorf("timing export %s: missing data_type", path)
	}

	return &td, nil
}
