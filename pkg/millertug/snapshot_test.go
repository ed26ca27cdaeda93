package millertug

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/millertug/pkg/files"
	"github.com/datatug/millertug/pkg/files/osfile"
	"go.uber.org/mock/gomock"
)

func TestNewSnapshot(t *testing.T) {
	t.Run("sorted_by_full_path", func(t *testing.T) {
		s := NewSnapshot("/tmp/a", []Entry{
			{Name: "c.txt", Kind: files.KindRegular},
			{Name: "b", Kind: files.KindDirectory},
			{Name: "B", Kind: files.KindRegular},
			{Name: "b.txt", Kind: files.KindRegular},
		})
		assert.Equal(t, []string{"B", "b", "b.txt", "c.txt"}, entryNames(s))
		assert.Equal(t, "/tmp/a", s.Location())
	})

	t.Run("does_not_alias_input", func(t *testing.T) {
		input := []Entry{{Name: "z"}, {Name: "a"}}
		s := NewSnapshot("/", input)
		assert.Equal(t, "z", input[0].Name)
		assert.Equal(t, []string{"a", "z"}, entryNames(s))
	})

	t.Run("empty", func(t *testing.T) {
		s := NewSnapshot("/empty", nil)
		_, ok := s.Selection()
		assert.False(t, ok)
		_, ok = s.SelectedEntry()
		assert.False(t, ok)
		_, ok = s.SelectedPath()
		assert.False(t, ok)
		assert.Equal(t, -1, s.MoveSelection(1))
	})
}

func TestSnapshot_MoveSelection(t *testing.T) {
	s := NewSnapshot("/tmp/a", []Entry{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	t.Run("up_at_first_is_noop", func(t *testing.T) {
		assert.Equal(t, 0, s.MoveSelection(-1))
	})

	t.Run("down", func(t *testing.T) {
		assert.Equal(t, 1, s.MoveSelection(+1))
		assert.Equal(t, 2, s.MoveSelection(+1))
	})

	t.Run("down_at_last_is_noop", func(t *testing.T) {
		assert.Equal(t, 2, s.MoveSelection(+1))
		entry, ok := s.SelectedEntry()
		assert.True(t, ok)
		assert.Equal(t, "c", entry.Name)
	})

	t.Run("random_presses_stay_in_bounds", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		for n := 1; n <= 5; n++ {
			entries := make([]Entry, n)
			for i := range entries {
				entries[i] = Entry{Name: string(rune('a' + i))}
			}
			s := NewSnapshot("/", entries)
			for i := 0; i < 200; i++ {
				delta := 1
				if rnd.Intn(2) == 0 {
					delta = -1
				}
				got := s.MoveSelection(delta)
				assert.True(t, got >= 0 && got < n, "selection %d out of [0,%d)", got, n)
				sel, ok := s.Selection()
				assert.True(t, ok)
				assert.Equal(t, got, sel)
			}
		}
	})
}

func TestSnapshot_SelectName(t *testing.T) {
	s := NewSnapshot("/tmp/a", []Entry{{Name: "b"}, {Name: "c.txt"}})
	assert.True(t, s.SelectName("c.txt"))
	path, ok := s.SelectedPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/tmp/a", "c.txt"), path)

	assert.False(t, s.SelectName("missing"))
	sel, _ := s.Selection()
	assert.Equal(t, 1, sel)
}

func TestEntry_Label(t *testing.T) {
	assert.Equal(t, "b/", Entry{Name: "b", Kind: files.KindDirectory}.Label())
	assert.Equal(t, "l@", Entry{Name: "l", Kind: files.KindSymlink}.Label())
	assert.Equal(t, "c.txt", Entry{Name: "c.txt", Kind: files.KindRegular}.Label())
	assert.Equal(t, "fifo", Entry{Name: "fifo", Kind: files.KindUnknown}.Label())
	assert.Equal(t, "\u00e9", Entry{Name: "e\u0301"}.DisplayName())
}

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("local_dir", func(t *testing.T) {
		root := tempDir(t)
		makeTree(t, root, "c.txt", "b/")
		if err := os.Symlink(filepath.Join(root, "b"), filepath.Join(root, "a-link")); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		s, err := LoadSnapshot(ctx, osfile.NewStore(), root)
		assert.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "a-link", Kind: files.KindSymlink},
			{Name: "b", Kind: files.KindDirectory},
			{Name: "c.txt", Kind: files.KindRegular},
		}, s.Entries())
		sel, ok := s.Selection()
		assert.True(t, ok)
		assert.Equal(t, 0, sel)
	})

	t.Run("mock_store", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ReadDir(gomock.Any(), "/tmp/a").Return(dirEntries("c.txt", "b/"), nil)
		s, err := LoadSnapshot(ctx, store, "/tmp/a")
		assert.NoError(t, err)
		assert.Equal(t, []string{"b", "c.txt"}, entryNames(s))
	})

	t.Run("errors_are_classified", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ReadDir(gomock.Any(), "/secret").Return(nil, os.ErrPermission)
		_, err := LoadSnapshot(ctx, store, "/secret")
		assert.True(t, files.IsLoadError(err, files.AccessDenied))
		assert.True(t, errors.Is(err, os.ErrPermission))
	})

	t.Run("not_a_directory", func(t *testing.T) {
		root := tempDir(t)
		makeTree(t, root, "c.txt")
		_, err := LoadSnapshot(ctx, osfile.NewStore(), filepath.Join(root, "c.txt"))
		assert.True(t, files.IsLoadError(err, files.NotADirectory))
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := LoadSnapshot(ctx, osfile.NewStore(), filepath.Join(tempDir(t), "missing"))
		assert.True(t, files.IsLoadError(err, files.NotFound))
	})
}
