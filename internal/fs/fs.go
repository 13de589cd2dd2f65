// Package fs provides a file system abstraction for testing.
// The backup pipeline creates and removes whole directory trees; routing
// those calls through an interface lets tests inject failures (for example
// a cleanup that cannot delete the dump directory) without touching the
// real file system in awkward ways.
package fs

import (
	"os"
)

// FS defines the file system operations the backup pipeline performs.
type FS interface {
	// MkdirAll creates all directories in the path.
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes path and everything it contains.
	RemoveAll(path string) error
}

// RealFS implements FS using the actual operating system.
// This is the production implementation.
type RealFS struct{}

// MkdirAll creates all directories in the path.
func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and everything it contains.
func (r *RealFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Default is the default RealFS instance for convenience.
var Default = &RealFS{}
