package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/models"
)

func TestCheckGates_NoGatesConfigured(t *testing.T) {
	c := &models.ConsolidatedSummary{
		Overall: models.OverallSummary{Score: 0.5, FailedTests: 10},
	}
	require.NoError(t, checkGates(config.New(), c))
}

func TestCheckGates_MinScore(t *testing.T) {
	cfg := config.New()
	cfg.Gates = map[string]any{
		"overall": map[string]any{"min_score": 0.9},
	}
	c := &models.ConsolidatedSummary{
		Overall: models.OverallSummary{Score: 0.85},
	}

	err := checkGates(cfg, c)
	var gateErr *GateFailureError
	require.ErrorAs(t, err, &gateErr)
	require.Contains(t, gateErr.Message, "overall score 0.85 below minimum 0.90")

	c.Overall.Score = 0.9
	require.NoError(t, checkGates(cfg, c))
}

func TestCheckGates_MaxFailed(t *testing.T) {
	cfg := config.New()
	cfg.Gates = map[string]any{
		"e2e": map[string]any{"max_failed": 0},
	}
	c := &models.ConsolidatedSummary{
		E2E: &models.E2ESummary{TotalTests: 10, PassedTests: 9, FailedTests: 1},
	}

	err := checkGates(cfg, c)
	var gateErr *GateFailureError
	require.ErrorAs(t, err, &gateErr)
	require.Contains(t, gateErr.Message, "e2e has 1 failed tests (max 0)")
}

func TestCheckGates_AbsentMaxFailedIgnoresFailures(t *testing.T) {
	cfg := config.New()
	cfg.Gates = map[string]any{
		"e2e": map[string]any{"min_score": 0.5},
	}
	c := &models.ConsolidatedSummary{
		E2E: &models.E2ESummary{TotalTests: 10, PassedTests: 8, FailedTests: 2},
	}
	require.NoError(t, checkGates(cfg, c))
}

func TestCheckGates_PassRateForScorelessDomains(t *testing.T) {
	cfg := config.New()
	cfg.Gates = map[string]any{
		"visual": map[string]any{"min_score": 0.95},
	}
	c := &models.ConsolidatedSummary{
		Visual: &models.VisualSummary{TotalTests: 10, PassedTests: 9, FailedTests: 1},
	}

	var gateErr *GateFailureError
	require.ErrorAs(t, checkGates(cfg, c), &gateErr)

	c.Visual.PassedTests = 10
	c.Visual.FailedTests = 0
	require.NoError(t, checkGates(cfg, c))
}

func TestCheckGates_GateOnAbsentDomain(t *testing.T) {
	cfg := config.New()
	cfg.Gates = map[string]any{
		"performance": map[string]any{"min_score": 0.9},
	}
	require.NoError(t, checkGates(cfg, &models.ConsolidatedSummary{}))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAggregateCommand_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	artifact := `{"totalTests": 3, "passedTests": 3, "coreWebVitals": {"lcp": {"values": [2000]}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "performance-home.json"), []byte(artifact), 0644))
	outDir := t.TempDir()

	out, err := runCommand(t, "aggregate", dir, "-o", outDir)
	require.NoError(t, err)
	require.Contains(t, out, "=== Test Run Digest ===")

	data, err := os.ReadFile(filepath.Join(outDir, "test-summary.json"))
	require.NoError(t, err)
	var c models.ConsolidatedSummary
	require.NoError(t, json.Unmarshal(data, &c))
	require.Equal(t, 3, c.Overall.TotalTests)
	require.Equal(t, models.StatusPassed, c.Overall.Status)

	require.FileExists(t, filepath.Join(outDir, "consolidated-report", "index.html"))
	require.FileExists(t, filepath.Join(outDir, "ci-summary.json"))
}

func TestAggregateCommand_GateFailure(t *testing.T) {
	dir := t.TempDir()
	artifact := `{"stats": {"expected": 5, "unexpected": 1}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "e2e-chromium.json"), []byte(artifact), 0644))
	cfgYAML := "gates:\n  e2e:\n    max_failed: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfgYAML), 0644))

	_, err := runCommand(t, "aggregate", dir, "-o", t.TempDir())
	var gateErr *GateFailureError
	require.True(t, errors.As(err, &gateErr), "expected a gate failure, got %v", err)
}
