// Package storage abstracts file storage for uploaded assets (menu item
// images). Two drivers ship by default:
//   - "local" — local filesystem under STORAGE_LOCAL_ROOT
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once at startup with storage.Connect(), then use the default-disk
// helpers or storage.Use("s3") for a named disk.
package storage

import "io"

// Disk is the storage driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
