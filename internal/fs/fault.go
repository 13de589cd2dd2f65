package fs

import "os"

// FaultFS wraps another FS and forces chosen operations to fail.
// Tests use it to exercise error paths such as a dump directory that
// cannot be removed after archiving.
type FaultFS struct {
	Wrapped FS

	// When non-nil the matching operation returns this error instead of
	// delegating to Wrapped.
	MkdirAllErr  error
	RemoveAllErr error
}

// NewFaultFS wraps the real file system.
func NewFaultFS() *FaultFS {
	return &FaultFS{Wrapped: Default}
}

// MkdirAll delegates unless MkdirAllErr is set.
func (f *FaultFS) MkdirAll(path string, perm os.FileMode) error {
	if f.MkdirAllErr != nil {
		return f.MkdirAllErr
	}
	return f.Wrapped.MkdirAll(path, perm)
}

// RemoveAll delegates unless RemoveAllErr is set.
func (f *FaultFS) RemoveAll(path string) error {
	if f.RemoveAllErr != nil {
		return f.RemoveAllErr
	}
	return f.Wrapped.RemoveAll(path)
}
