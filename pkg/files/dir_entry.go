package files

import (
	"io/fs"
	"os"
	"path/filepath"
)

type DirEntryOption func(*DirEntry)

// AsSymlink marks the entry as a symbolic link.
func AsSymlink() DirEntryOption {
	return func(d *DirEntry) {
		d.mode = os.ModeSymlink
	}
}

// WithMode sets the raw type bits reported by Type.
func WithMode(mode os.FileMode) DirEntryOption {
	return func(d *DirEntry) {
		d.mode = mode & os.ModeType
	}
}

// NewDirEntry creates an in-memory os.DirEntry, mostly useful for stores
// that do not read from the local filesystem and for tests.
func NewDirEntry(name string, isDir bool, o ...DirEntryOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{name: name}
	if isDir {
		dirEntry.mode = os.ModeDir
	}
	for _, opt := range o {
		opt(&dirEntry)
	}
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode os.FileMode
}

func (d DirEntry) Name() string               { return d.name }
func (d DirEntry) IsDir() bool                { return d.mode&os.ModeDir != 0 }
func (d DirEntry) Type() os.FileMode          { return d.mode }
func (d DirEntry) Info() (fs.FileInfo, error) { return nil, nil }
