// Package config provides the Config struct and loader for .qreport.yaml
// project-level configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the well-known project config file name.
const ConfigFileName = ".qreport.yaml"

// Default Core Web Vitals thresholds in milliseconds (CLS is unitless).
// New() references these; no other code should duplicate them.
const (
	DefaultThresholdFCP = 1800
	DefaultThresholdLCP = 2500
	DefaultThresholdCLS = 0.1
	DefaultThresholdFID = 100
	DefaultThresholdTTI = 3800
	DefaultThresholdSI  = 3400

	DefaultOutputDir = "."

	DefaultServerPort = 4173
)

// Thresholds holds the per-metric ceilings used to score samples.
type Thresholds struct {
	FCP float64 `yaml:"fcp,omitempty"`
	LCP float64 `yaml:"lcp,omitempty"`
	CLS float64 `yaml:"cls,omitempty"`
	FID float64 `yaml:"fid,omitempty"`
	TTI float64 `yaml:"tti,omitempty"`
	SI  float64 `yaml:"si,omitempty"`
}

// ByName returns the thresholds keyed by canonical metric name.
func (t Thresholds) ByName() map[string]float64 {
	return map[string]float64{
		"fcp": t.FCP,
		"lcp": t.LCP,
		"cls": t.CLS,
		"fid": t.FID,
		"tti": t.TTI,
		"si":  t.SI,
	}
}

// Gate is a CI gate for one domain, decoded from the loosely-typed gates
// section. A zero MinScore disables the score check; a nil MaxFailed
// disables the failure-count check (max_failed: 0 means "no failures
// allowed").
type Gate struct {
	MinScore  float64 `mapstructure:"min_score"`
	MaxFailed *int    `mapstructure:"max_failed"`
}

// Config is the project-level configuration loaded from .qreport.yaml.
type Config struct {
	Thresholds Thresholds     `yaml:"thresholds,omitempty"`
	OutputDir  string         `yaml:"output_dir,omitempty"`
	ServerPort int            `yaml:"server_port,omitempty"`
	Gates      map[string]any `yaml:"gates,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Thresholds: Thresholds{
			FCP: DefaultThresholdFCP,
			LCP: DefaultThresholdLCP,
			CLS: DefaultThresholdCLS,
			FID: DefaultThresholdFID,
			TTI: DefaultThresholdTTI,
			SI:  DefaultThresholdSI,
		},
		OutputDir:  DefaultOutputDir,
		ServerPort: DefaultServerPort,
	}
}

// Load reads a config file and overlays it on the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Re-fill any thresholds the file zeroed out or omitted.
	defaults := New().Thresholds
	fillZero(&cfg.Thresholds.FCP, defaults.FCP)
	fillZero(&cfg.Thresholds.LCP, defaults.LCP)
	fillZero(&cfg.Thresholds.CLS, defaults.CLS)
	fillZero(&cfg.Thresholds.FID, defaults.FID)
	fillZero(&cfg.Thresholds.TTI, defaults.TTI)
	fillZero(&cfg.Thresholds.SI, defaults.SI)
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.ServerPort == 0 {
		cfg.ServerPort = DefaultServerPort
	}

	return cfg, nil
}

// FindAndLoad walks up from dir looking for a .qreport.yaml file and loads
// the first one found. Returns defaults when no file exists anywhere up the
// tree.
func FindAndLoad(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return New(), nil
		}
		abs = parent
	}
}

// Save writes the config back to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// GateFor decodes the gate entry for the named domain into a typed Gate.
// Returns nil when no gate is configured for the domain.
func (c *Config) GateFor(domain string) (*Gate, error) {
	raw, ok := c.Gates[domain]
	if !ok {
		return nil, nil
	}
	var g Gate
	if err := mapstructure.Decode(raw, &g); err != nil {
		return nil, fmt.Errorf("decoding gate %q: %w", domain, err)
	}
	return &g, nil
}

func fillZero(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
