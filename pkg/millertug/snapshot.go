package millertug

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/datatug/millertug/pkg/files"
	"golang.org/x/text/unicode/norm"
)

// Entry is one child of a directory snapshot.
type Entry struct {
	Name string
	Kind files.EntryKind
}

// DisplayName is the name in NFC form, so decomposed names render
// as the same glyphs the user typed.
func (e Entry) DisplayName() string {
	return norm.NFC.String(e.Name)
}

// Label is the text drawn for the entry: the name plus the kind suffix.
func (e Entry) Label() string {
	return e.DisplayName() + e.Kind.Suffix()
}

// Snapshot is the listing of one directory taken at load time.
// Only the selection changes after construction.
type Snapshot struct {
	location  string
	entries   []Entry
	selection int
}

// NewSnapshot sorts a copy of entries by their full path under location.
func NewSnapshot(location string, entries []Entry) *Snapshot {
	type keyed struct {
		path  string
		entry Entry
	}
	sorted := make([]keyed, len(entries))
	for i, entry := range entries {
		sorted[i] = keyed{path: filepath.Join(location, entry.Name), entry: entry}
	}
	slices.SortStableFunc(sorted, func(a, b keyed) int {
		return strings.Compare(a.path, b.path)
	})
	s := &Snapshot{location: location, entries: make([]Entry, len(sorted))}
	for i, k := range sorted {
		s.entries[i] = k.entry
	}
	return s
}

// LoadSnapshot reads location through store and classifies its entries.
// Failures are reported as *files.LoadError.
func LoadSnapshot(ctx context.Context, store files.Store, location string) (*Snapshot, error) {
	children, err := store.ReadDir(ctx, location)
	if err != nil {
		return nil, files.NewLoadError(location, err)
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, Entry{Name: child.Name(), Kind: files.Classify(child)})
	}
	return NewSnapshot(location, entries), nil
}

func (s *Snapshot) Location() string {
	return s.location
}

// Entries returns the sorted entries. Callers must not modify the slice.
func (s *Snapshot) Entries() []Entry {
	return s.entries
}

func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Selection returns the selected index, false when there are no entries.
func (s *Snapshot) Selection() (int, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.selection, true
}

// MoveSelection moves the selection by delta, clamped to the entries.
// It returns the resulting index, or -1 when the snapshot is empty.
func (s *Snapshot) MoveSelection(delta int) int {
	if len(s.entries) == 0 {
		return -1
	}
	s.selection = min(max(s.selection+delta, 0), len(s.entries)-1)
	return s.selection
}

// SelectName selects the entry called name. It returns false, leaving the
// selection as it was, when there is no such entry.
func (s *Snapshot) SelectName(name string) bool {
	for i, entry := range s.entries {
		if entry.Name == name {
			s.selection = i
			return true
		}
	}
	return false
}

func (s *Snapshot) SelectedEntry() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[s.selection], true
}

// SelectedPath is the full path of the selected entry.
func (s *Snapshot) SelectedPath() (string, bool) {
	entry, ok := s.SelectedEntry()
	if !ok {
		return "", false
	}
	return filepath.Join(s.location, entry.Name), true
}
