package collect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Re-running a collector over unchanged input must reproduce the identical
// summary: folds are pure and file visit order is sorted.
func TestCollectors_Rerun(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "performance-a.json", `{
		"totalTests": 2, "passedTests": 2,
		"coreWebVitals": {"fcp": {"values": [900, 1700]}, "lcp": {"values": [2400]}}
	}`)
	writeArtifact(t, dir, "performance-b.json", `{
		"totalTests": 1, "passedTests": 1,
		"coreWebVitals": {"fcp": {"values": [1300]}}
	}`)
	writeArtifact(t, dir, "visual-a.json", `{"totalTests": 4, "passedTests": 4}`)

	ctx := context.Background()
	opts := defaultOpts(dir)

	p1, err := Performance(ctx, opts)
	require.NoError(t, err)
	p2, err := Performance(ctx, opts)
	require.NoError(t, err)
	require.Equal(t, p1, p2)

	v1, err := Visual(ctx, opts)
	require.NoError(t, err)
	v2, err := Visual(ctx, opts)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}
