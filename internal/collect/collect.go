// Package collect reads JSON test artifacts from disk and folds them into
// typed domain summaries.
//
// Each domain collector scans the artifact root for files matching its
// filename prefix, parses them, and accumulates counters and sample lists.
// A malformed file is logged and skipped; it never aborts the scan. Fold
// operations are commutative (pure summation and concatenation), so the
// order files are visited in does not affect the final aggregate.
package collect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/stackmesa/qreport/internal/config"
)

// perFileTimeout bounds a single artifact read so one hung file (e.g. a
// stalled network mount) cannot stall the whole run.
const perFileTimeout = 10 * time.Second

// Options carries the shared collector inputs.
type Options struct {
	// Root is the directory scanned for artifact files.
	Root string
	// Thresholds are the metric ceilings used to score samples.
	Thresholds config.Thresholds
	// Logger receives skip warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// findArtifacts walks root and returns all files whose base name starts with
// prefix and ends with .json or .json.gz. Hidden directories and
// node_modules are skipped. Paths are returned sorted for deterministic
// logging, although fold order does not affect results.
func findArtifacts(root, prefix string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("artifact root: %w", err)
	}

	var matches []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			name := d.Name()
			if path != absRoot && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absRoot, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// readArtifact reads one artifact file, transparently decompressing
// .json.gz, with a per-file deadline.
func readArtifact(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, perFileTimeout)
	defer cancel()

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		if err == nil && strings.HasSuffix(path, ".gz") {
			data, err = gunzip(data)
		}
		ch <- readResult{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("reading %s: %w", path, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, r.err)
		}
		return r.data, nil
	}
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close() //nolint:errcheck
	return io.ReadAll(zr)
}

// foldFiles runs fold over every matching artifact, decoding each file into
// a fresh T. Malformed files are logged and skipped. Returns the number of
// files successfully folded.
func foldFiles[T any](ctx context.Context, opts Options, prefix string, fold func(*T)) (int, error) {
	files, err := findArtifacts(opts.Root, prefix)
	if err != nil {
		return 0, err
	}

	log := opts.logger()
	folded := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return folded, err
		}
		data, err := readArtifact(ctx, path)
		if err != nil {
			log.Warn("skipping unreadable artifact", "path", path, "error", err)
			continue
		}
		var artifact T
		if err := json.Unmarshal(data, &artifact); err != nil {
			log.Warn("skipping malformed artifact", "path", path, "error", err)
			continue
		}
		fold(&artifact)
		folded++
	}
	return folded, nil
}
