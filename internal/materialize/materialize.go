// Package materialize implements the one-time rewrite pass that resolves
// $NAME / ${NAME} placeholders in built bundle files against an Environment
// Snapshot. The pass runs to completion before the static file server is
// started: it is single-threaded, reads each matched file fully, rewrites
// it atomically, and fails fast on the first I/O error.
package materialize

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dhemric/spaenv/internal/env"
	"github.com/dhemric/spaenv/internal/logger"
	"github.com/google/uuid"
)

// Options configures a single materialization pass.
type Options struct {
	// Globs select the target files. At least one glob is required; a glob
	// matching zero files is a no-op, not an error.
	Globs []string

	// Snapshot is the immutable substitution source.
	Snapshot env.Snapshot

	// Strict fails the pass when any placeholder referenced a name absent
	// from the snapshot. Off by default: the documented policy is to leave
	// unknown tokens verbatim.
	Strict bool

	// DryRun computes the full report without writing anything.
	DryRun bool

	// LockFile, when non-empty, serializes the pass against other processes
	// via an advisory flock on this path.
	LockFile string
}

// Report summarizes a completed pass.
type Report struct {
	RunID          string
	FilesScanned   int
	FilesChanged   int
	TokensReplaced int
	Unresolved     []string
	Elapsed        time.Duration
}

// Run executes one materialization pass. Matched files are processed in
// lexicographic order; each file is rewritten independently and atomically.
// The first read/write/rename failure aborts the pass with an IOError.
// Invalid globs surface as ConfigError before any file is touched.
func Run(opts Options) (*Report, error) {
	if opts.LockFile != "" {
		var report *Report
		err := withFileLock(opts.LockFile, func() error {
			var runErr error
			report, runErr = run(opts)
			return runErr
		})
		return report, err
	}
	return run(opts)
}

func run(opts Options) (*Report, error) {
	start := time.Now()

	files, err := expandGlobs(opts.Globs)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString()}
	missing := map[string]struct{}{}

	logger.Debug().
		Str("run_id", report.RunID).
		Int("files", len(files)).
		Int("snapshot_size", opts.Snapshot.Len()).
		Bool("dry_run", opts.DryRun).
		Msg("materialization pass starting")

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &IOError{Op: "stat", Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			continue
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return nil, &IOError{Op: "read", Path: path, Err: err}
		}

		out, replaced, unresolved := Expand(src, opts.Snapshot)
		for _, name := range unresolved {
			missing[name] = struct{}{}
		}

		report.FilesScanned++
		report.TokensReplaced += replaced

		if replaced == 0 {
			logger.Debug().Str("run_id", report.RunID).Str("file", path).Msg("no placeholders to replace")
			continue
		}

		report.FilesChanged++
		logger.Debug().
			Str("run_id", report.RunID).
			Str("file", path).
			Int("replaced", replaced).
			Strs("unresolved", unresolved).
			Msg("file rewritten")

		if opts.DryRun {
			continue
		}
		if err := writeFileAtomic(path, out, info.Mode().Perm()); err != nil {
			return nil, err
		}
	}

	for name := range missing {
		report.Unresolved = append(report.Unresolved, name)
	}
	sort.Strings(report.Unresolved)
	report.Elapsed = time.Since(start)

	logger.Info().
		Str("run_id", report.RunID).
		Int("files_scanned", report.FilesScanned).
		Int("files_changed", report.FilesChanged).
		Int("tokens_replaced", report.TokensReplaced).
		Strs("unresolved", report.Unresolved).
		Dur("elapsed", report.Elapsed).
		Msg("materialization pass complete")

	if opts.Strict && len(report.Unresolved) > 0 {
		return report, &UnresolvedError{Names: report.Unresolved}
	}
	return report, nil
}

// expandGlobs enumerates all glob matches, deduplicated and in
// lexicographic order. Ordering matters only for deterministic output;
// each file is rewritten independently.
func expandGlobs(globs []string) ([]string, error) {
	if len(globs) == 0 {
		return nil, ConfigErrorf("no target globs configured")
	}

	seen := map[string]struct{}{}
	var files []string
	for _, g := range globs {
		if g == "" {
			return nil, ConfigErrorf("empty target glob")
		}
		matches, err := filepath.Glob(g)
		if err != nil {
			return nil, ConfigErrorf("malformed target glob %q: %v", g, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
