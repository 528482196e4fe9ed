package filestorage

import "io"

// FileStorage defines how course data files are located and opened
type FileStorage interface {
	// Open returns a reader for the named data file. The caller closes it.
	Open(name string) (io.ReadCloser, error)

	// CanOpen reports whether the named data file can be opened for reading
	CanOpen(name string) bool

	// GetFullPath returns the filesystem path a name resolves to
	GetFullPath(name string) string
}
