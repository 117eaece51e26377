package collect

import (
	"context"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/models"
)

// VisualPrefix matches visual-*.json visual-regression artifacts.
const VisualPrefix = "visual-"

type visualArtifact struct {
	TotalTests         int `json:"totalTests"`
	PassedTests        int `json:"passedTests"`
	FailedTests        int `json:"failedTests"`
	Differences        int `json:"differences"`
	NewScreenshots     int `json:"newScreenshots"`
	UpdatedScreenshots int `json:"updatedScreenshots"`
}

// Visual scans root for visual-regression artifacts and aggregates them.
func Visual(ctx context.Context, opts Options) (*models.VisualSummary, error) {
	var s models.VisualSummary

	folded, err := foldFiles(ctx, opts, VisualPrefix, func(a *visualArtifact) {
		s.TotalTests += a.TotalTests
		s.PassedTests += a.PassedTests
		s.FailedTests += a.FailedTests
		s.Differences += a.Differences
		s.NewScreenshots += a.NewScreenshots
		s.UpdatedScreenshots += a.UpdatedScreenshots
	})
	if err != nil {
		return nil, err
	}
	s.FilesScanned = folded
	s.Status = aggregate.DomainStatus(s.TotalTests, s.FailedTests)
	return &s, nil
}
