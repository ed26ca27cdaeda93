package osfile

import (
	"context"
	"os"

	"github.com/datatug/millertug/pkg/files"
)

var osReadDir = os.ReadDir

var _ files.Store = (*Store)(nil)

// Store reads directories from the local filesystem.
type Store struct{}

// ReadDir returns the entries of the named directory. Type bits come from
// the directory read itself, so symlinks are reported as links.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := osReadDir(name)
	if err != nil {
		return nil, files.NewLoadError(name, err)
	}
	return entries, nil
}

func NewStore() *Store {
	return &Store{}
}
