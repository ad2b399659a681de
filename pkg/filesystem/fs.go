package filesystem

import (
	"io"
	"io/fs"
)

// File is the writable handle returned by FS.CreateTemp.
type File interface {
	io.Writer
	io.Closer
	Name() string
	Sync() error
}

// FS is the subset of filesystem operations the shortcut store needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Chmod(name string, mode fs.FileMode) error
	CreateTemp(dir, pattern string) (File, error)
}
