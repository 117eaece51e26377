package collect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/models"
)

func TestVisual_Aggregates(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "visual-desktop.json", `{
		"totalTests": 12, "passedTests": 11, "failedTests": 1,
		"differences": 1, "newScreenshots": 2, "updatedScreenshots": 0
	}`)
	writeArtifact(t, dir, "visual-mobile.json", `{
		"totalTests": 12, "passedTests": 12,
		"newScreenshots": 1, "updatedScreenshots": 3
	}`)

	v, err := Visual(context.Background(), defaultOpts(dir))
	require.NoError(t, err)

	require.Equal(t, 24, v.TotalTests)
	require.Equal(t, 23, v.PassedTests)
	require.Equal(t, 1, v.FailedTests)
	require.Equal(t, 1, v.Differences)
	require.Equal(t, 3, v.NewScreenshots)
	require.Equal(t, 3, v.UpdatedScreenshots)
	require.Equal(t, models.StatusFailed, v.Status)
	require.Equal(t, 2, v.FilesScanned)
}
