package millertug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datatug/millertug/pkg/files"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/mock/gomock"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

// readLine reads width cells of row y starting at column x, with trailing
// blanks trimmed.
func readLine(screen tcell.Screen, x, y, width int) string {
	var b strings.Builder
	for i := x; i < x+width; i++ {
		mainc, combc, _, _ := screen.GetContent(i, y)
		str := ""
		if mainc != 0 {
			str = string(append([]rune{mainc}, combc...))
		}
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return strings.TrimRight(b.String(), " ")
}

// makeTree creates dirs (trailing slash) and files under root.
func makeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(p), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// tempDir is t.TempDir with symlinks resolved, so locations compare equal
// to canonicalized paths on systems where the temp dir is a link.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func newMockStore(t *testing.T) *files.MockStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return files.NewMockStore(ctrl)
}

func dirEntries(names ...string) []os.DirEntry {
	entries := make([]os.DirEntry, len(names))
	for i, name := range names {
		if strings.HasSuffix(name, "/") {
			entries[i] = files.NewDirEntry(strings.TrimSuffix(name, "/"), true)
			continue
		}
		if strings.HasSuffix(name, "@") {
			entries[i] = files.NewDirEntry(strings.TrimSuffix(name, "@"), false, files.AsSymlink())
			continue
		}
		entries[i] = files.NewDirEntry(name, false)
	}
	return entries
}

func entryNames(s *Snapshot) []string {
	names := make([]string, s.Len())
	for i, e := range s.Entries() {
		names[i] = e.Name
	}
	return names
}
