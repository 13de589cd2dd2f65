package backup

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/artisanexperiences/mongovault/internal/fs"
)

// Result is the outcome of one database dump.
type Result struct {
	Database string
	Err      error
}

// Failed reports whether the dump did not complete.
func (r Result) Failed() bool { return r.Err != nil }

// Summary aggregates a whole run for the final report.
type Summary struct {
	Timestamp string
	Attempted int
	Succeeded int
	Failed    []string
	Results   []Result

	// Location is the final on-disk location: the archive when one was
	// created, otherwise the uncompressed timestamp directory.
	Location string
	Archived bool

	// ArchiveErr is set when archiving was requested but failed; the
	// uncompressed directory is retained in that case.
	ArchiveErr error
}

// Runner executes backups strictly sequentially: one dump subprocess runs
// to completion before the next begins.
type Runner struct {
	URL       string
	OutputDir string
	Dumper    Dumper
	FS        fs.FS
	Log       *log.Logger

	// Now is the clock, overridable in tests.
	Now func() time.Time

	// Progress, when set, is called after each database finishes.
	Progress func(database string, err error)
}

// NewRunner wires a Runner with the real mongodump, file system, and clock.
func NewRunner(url, outputDir string, logger *log.Logger) *Runner {
	return &Runner{
		URL:       url,
		OutputDir: outputDir,
		Dumper:    &Mongodump{},
		FS:        fs.Default,
		Log:       logger,
		Now:       time.Now,
	}
}

// Run dumps every database in order into OutputDir/<timestamp>/<name>/ and,
// when archive is set and at least one dump succeeded, compresses the run
// into a single zip and removes the uncompressed tree. Per-database
// failures do not stop the run; they are accumulated into the summary.
func (r *Runner) Run(ctx context.Context, databases []string, archive bool) (*Summary, error) {
	if len(databases) == 0 {
		return nil, errors.New("no databases to back up")
	}

	start := r.Now()
	stamp := start.Format(TimestampFormat)
	runDir := filepath.Join(r.OutputDir, stamp)

	summary := &Summary{
		Timestamp: stamp,
		Attempted: len(databases),
		Location:  absOrSelf(runDir),
	}

	r.Log.Debug("starting backup run", "databases", len(databases), "dir", runDir)

	// Once mongodump turns out to be missing it is missing for every
	// remaining database too; record the same failure without retrying.
	toolMissing := false

	for _, database := range databases {
		var err error
		if toolMissing {
			err = ErrToolNotFound
		} else {
			err = r.dumpOne(ctx, database, runDir)
			if errors.Is(err, ErrToolNotFound) {
				toolMissing = true
			}
		}

		summary.Results = append(summary.Results, Result{Database: database, Err: err})
		if err != nil {
			summary.Failed = append(summary.Failed, database)
			r.Log.Error("backup failed", "database", database, "error", err)
		} else {
			summary.Succeeded++
			r.Log.Debug("backup complete", "database", database)
		}

		if r.Progress != nil {
			r.Progress(database, err)
		}
	}

	if archive && summary.Succeeded > 0 {
		r.archiveRun(runDir, summary)
	}

	return summary, nil
}

func (r *Runner) dumpOne(ctx context.Context, database, runDir string) error {
	if err := r.FS.MkdirAll(filepath.Join(runDir, database), 0755); err != nil {
		return err
	}
	return r.Dumper.Dump(ctx, r.URL, database, runDir)
}

// archiveRun compresses runDir into OutputDir and deletes the uncompressed
// tree. An archive failure keeps the tree; a cleanup failure keeps the
// archive and is only a warning.
func (r *Runner) archiveRun(runDir string, summary *Summary) {
	name := ArchiveFilename(r.Now())
	zipPath := filepath.Join(r.OutputDir, name)

	r.Log.Debug("creating archive", "path", zipPath)

	if err := CreateArchive(runDir, zipPath); err != nil {
		summary.ArchiveErr = err
		r.Log.Error("archiving failed, keeping uncompressed backup", "dir", runDir, "error", err)
		return
	}

	summary.Archived = true
	summary.Location = absOrSelf(zipPath)

	if err := r.FS.RemoveAll(runDir); err != nil {
		r.Log.Warn("could not remove uncompressed backup directory", "dir", runDir, "error", err)
	}
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
