package files

import "os"

// EntryKind classifies a directory entry by its type bits at read time.
type EntryKind int

const (
	KindUnknown EntryKind = iota
	KindDirectory
	KindRegular
	KindSymlink
)

func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegular:
		return "regular"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Traversable reports whether an entry of this kind can be entered.
// Symlinks are optimistic: the target is only known once it is read.
func (k EntryKind) Traversable() bool {
	return k == KindDirectory || k == KindSymlink
}

// Suffix is the one character marker drawn after an entry name.
func (k EntryKind) Suffix() string {
	switch k {
	case KindDirectory:
		return "/"
	case KindSymlink:
		return "@"
	default:
		return ""
	}
}

// Classify maps os.DirEntry type bits to an EntryKind.
// Symlink is checked first since the bits of a link never include ModeDir.
func Classify(entry os.DirEntry) EntryKind {
	mode := entry.Type()
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindRegular
	default:
		return KindUnknown
	}
}
