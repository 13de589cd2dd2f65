// Package backup orchestrates the export of selected databases: one
// mongodump subprocess per database, strictly sequential, with an optional
// zip-and-cleanup pass at the end.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrToolNotFound reports that the mongodump executable is not installed.
var ErrToolNotFound = errors.New("mongodump not found - install the MongoDB Database Tools")

// Dumper exports a single database into outDir. Implementations classify
// success purely by process exit status.
type Dumper interface {
	Dump(ctx context.Context, url, database, outDir string) error
}

// Mongodump runs the external mongodump utility.
type Mongodump struct {
	// Binary overrides the executable name, mostly for tests.
	Binary string
}

// Dump invokes mongodump for one database. The utility creates
// outDir/<database>/ itself; stderr is captured and returned verbatim on a
// nonzero exit so the operator sees the utility's own diagnostics.
func (d *Mongodump) Dump(ctx context.Context, url, database, outDir string) error {
	binary := d.Binary
	if binary == "" {
		binary = "mongodump"
	}

	cmd := exec.CommandContext(ctx, binary, "--uri", url, "--db", database, "--out", outDir)

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrToolNotFound
		}
		if diag := strings.TrimSpace(stderr.String()); diag != "" {
			return fmt.Errorf("mongodump failed: %s", diag)
		}
		return fmt.Errorf("mongodump failed: %w", err)
	}

	return nil
}
