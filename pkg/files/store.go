package files

import (
	"context"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store reads directory listings. Implementations must return entries
// with names relative to the directory being read.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
