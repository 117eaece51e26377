package cisummary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/models"
)

func TestFromConsolidated(t *testing.T) {
	c := &models.ConsolidatedSummary{
		Overall: models.OverallSummary{
			TotalTests: 40, PassedTests: 39, FailedTests: 1,
			Status: models.StatusFailed, Score: 0.88, Grade: "B",
		},
		Performance:   &models.PerformanceSummary{Score: 0.91},
		Accessibility: &models.AccessibilitySummary{Score: 0.85},
		Issues:        []models.Issue{{Title: "something"}},
	}

	s := FromConsolidated(c)
	require.Equal(t, models.StatusFailed, s.Status)
	require.Equal(t, 40, s.TotalTests)
	require.Equal(t, 0.88, s.OverallScore)
	require.Equal(t, "B", s.OverallGrade)
	require.Equal(t, 0.91, s.PerformanceScore)
	require.Equal(t, 0.85, s.AccessibilityScore)
}

func TestFromConsolidated_NilDomains(t *testing.T) {
	s := FromConsolidated(&models.ConsolidatedSummary{
		Overall: models.OverallSummary{Status: models.StatusEmpty},
	})
	require.Zero(t, s.PerformanceScore)
	require.Zero(t, s.AccessibilityScore)
}

func TestWrite_ScalarShapeOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci-summary.json")
	c := &models.ConsolidatedSummary{
		Overall: models.OverallSummary{TotalTests: 5, PassedTests: 5, Status: models.StatusPassed, Score: 0.95, Grade: "A"},
		Issues:  []models.Issue{{Title: "not for CI"}},
	}

	require.NoError(t, Write(path, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, "passed", got["status"])
	require.NotContains(t, got, "issues")
	require.NotContains(t, got, "recommendations")
	require.NotContains(t, got, "performance")
}

func TestMetadataFromEnv(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "12345")
	t.Setenv("GITHUB_SERVER_URL", "https://github.com")
	t.Setenv("GITHUB_REPOSITORY", "stackmesa/webapp")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_SHA", "abc1234")
	t.Setenv("GITHUB_ACTOR", "octocat")
	t.Setenv("GITHUB_EVENT_NAME", "pull_request")

	m := MetadataFromEnv()
	require.Equal(t, "12345", m.RunID)
	require.Equal(t, "stackmesa/webapp", m.Repository)
	require.Equal(t, "main", m.Branch)
	require.Equal(t, "abc1234", m.Commit)
	require.Equal(t, "octocat", m.Actor)
	require.Equal(t, "pull_request", m.Event)
	require.Equal(t, "https://github.com/stackmesa/webapp/actions/runs/12345", m.RunURL)
}

func TestMetadataFromEnv_OutsideCI(t *testing.T) {
	for _, k := range []string{
		"GITHUB_RUN_ID", "GITHUB_SERVER_URL", "GITHUB_REPOSITORY",
		"GITHUB_REF_NAME", "GITHUB_SHA", "GITHUB_ACTOR", "GITHUB_EVENT_NAME",
	} {
		t.Setenv(k, "")
	}

	m := MetadataFromEnv()
	require.Zero(t, m)
	require.Empty(t, m.RunURL)
}
