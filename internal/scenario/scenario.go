package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/hitcount/internal/contention"
)

// Scenario describes one contention run and what its report must satisfy.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Workers is the number of concurrent workers.
	Workers int `yaml:"workers"`

	// Duration is the run window.
	Duration time.Duration `yaml:"duration"`

	// Backoff is the per-iteration pause.
	Backoff time.Duration `yaml:"backoff"`

	// Expect bounds the resulting report.
	Expect Expect `yaml:"expect"`
}

// Expect holds report expectations.
type Expect struct {
	// Lines is the exact number of report lines.
	Lines int `yaml:"lines"`

	// MinTotal is a lower bound on the sum of all hit counts.
	MinTotal int64 `yaml:"min_total,omitempty"`
}

// Config returns the contention configuration the scenario runs with.
func (s *Scenario) Config() contention.Config {
	return contention.Config{
		Workers:  s.Workers,
		Duration: s.Duration,
		Backoff:  s.Backoff,
	}
}

// Load reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// LoadDir loads every *.yaml file in dir, ordered by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", s.Name, prev, path)
		}
		seen[s.Name] = path
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// Validate checks that required fields are present and consistent.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if err := s.Config().Validate(); err != nil {
		return err
	}
	if s.Expect.Lines != s.Workers {
		return fmt.Errorf("expect.lines must equal workers (%d != %d)", s.Expect.Lines, s.Workers)
	}
	if s.Expect.MinTotal < 0 {
		return fmt.Errorf("expect.min_total must be non-negative")
	}
	if s.Expect.MinTotal > 0 && (s.Workers == 0 || s.Duration == 0) {
		return fmt.Errorf("expect.min_total requires workers and duration > 0")
	}
	return nil
}
