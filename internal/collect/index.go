package collect

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stackmesa/qreport/internal/models"
)

// indexArtifacts classifies non-JSON run artifacts (traces, screenshots,
// videos, rendered reports) by extension so the consolidated report can link
// to them. Paths are relative to root. Errors are ignored: a missing index
// is cosmetic, not a failure.
func indexArtifacts(root string) models.ArtifactIndex {
	var idx models.ArtifactIndex

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			if d != nil && d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		switch {
		case strings.HasSuffix(rel, ".html"):
			idx.Reports = append(idx.Reports, rel)
		case strings.HasSuffix(rel, "-trace.zip"), strings.Contains(rel, string(filepath.Separator)+"traces"+string(filepath.Separator)):
			idx.Traces = append(idx.Traces, rel)
		case strings.HasSuffix(rel, ".png"), strings.HasSuffix(rel, ".jpeg"):
			idx.Screenshots = append(idx.Screenshots, rel)
		case strings.HasSuffix(rel, ".webm"), strings.HasSuffix(rel, ".mp4"):
			idx.Videos = append(idx.Videos, rel)
		}
		return nil
	})

	sort.Strings(idx.Reports)
	sort.Strings(idx.Traces)
	sort.Strings(idx.Screenshots)
	sort.Strings(idx.Videos)
	return idx
}
