package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/tlund/meadowsnake/config"
)

// OutputManager writes run records to runs.csv in the output directory,
// alongside a YAML snapshot of the config the session played with.
type OutputManager struct {
	dir      string
	runsFile *os.File

	// First write emits the header row
	runsHeaderWritten bool
}

// NewOutputManager creates the output directory and opens runs.csv.
// Returns nil if dir is empty (output disabled); a nil manager is safe to
// use, every method no-ops.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}

	return &OutputManager{dir: dir, runsFile: f}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRun appends a run record to runs.csv.
func (om *OutputManager) WriteRun(rec RunRecord) error {
	if om == nil {
		return nil
	}

	records := []RunRecord{rec}
	if !om.runsHeaderWritten {
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
		om.runsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
		return fmt.Errorf("writing run record: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if err := om.runsFile.Close(); err != nil {
		return fmt.Errorf("closing runs.csv: %w", err)
	}
	return nil
}
