//go:generate mockgen -destination=./mocks/fs.go . FileSystem

package sdk

import "os"

// FileSystem answers existence queries for installed locations.
type FileSystem interface {
	Exists(path string) bool
}

// OSFileSystem queries the local disk.
type OSFileSystem struct{}

// Exists reports whether path can be stat'ed.
func (OSFileSystem) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
