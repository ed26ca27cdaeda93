package millertug

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/datatug/millertug/pkg/files"
	"github.com/datatug/millertug/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

// Redraw is how much of the screen a handled event invalidated.
// Larger values include the smaller ones.
type Redraw int

const (
	RedrawNone Redraw = iota
	RedrawCommandLine
	RedrawPartial // center and preview panes plus cursor
	RedrawFull
)

// Navigator moves the browser through the filesystem by rotating the
// pane ring and keeping the preview in step with the selection.
type Navigator struct {
	ring  *PaneRing
	store files.Store
	log   logrus.FieldLogger
}

func NewNavigator(ring *PaneRing, store files.Store, log logrus.FieldLogger) *Navigator {
	return &Navigator{ring: ring, store: store, log: log}
}

func (nav *Navigator) Ring() *PaneRing {
	return nav.ring
}

func (nav *Navigator) load(ctx context.Context, dir string) (*Snapshot, error) {
	s, err := LoadSnapshot(ctx, nav.store, dir)
	if err != nil {
		nav.log.WithError(err).WithField("dir", dir).Debug("load failed")
		return nil, err
	}
	nav.log.WithField("dir", dir).WithField("entries", s.Len()).Debug("loaded")
	return s, nil
}

// loadParent loads the directory containing dir with dir selected.
// A root dir or a failed load gives Empty.
func (nav *Navigator) loadParent(ctx context.Context, dir string) Contents {
	parent, ok := fsutils.Parent(dir)
	if !ok {
		return Empty()
	}
	s, err := nav.load(ctx, parent)
	if err != nil {
		return Empty()
	}
	s.SelectName(filepath.Base(dir))
	return Loaded(s)
}

// Init shows dir in the center pane and its parent on the left.
// Only a failure to read dir itself is returned.
func (nav *Navigator) Init(ctx context.Context, dir string) error {
	center, err := nav.load(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	nav.ring.Center().Bind(Loaded(center))
	nav.ring.Left().Bind(nav.loadParent(ctx, dir))
	nav.RefreshPreview(ctx)
	return nil
}

// RefreshPreview shows the selected directory in the right pane, or
// nothing for files, empty listings and unreadable targets.
func (nav *Navigator) RefreshPreview(ctx context.Context) {
	right := nav.ring.Right()
	s, ok := nav.ring.Center().Snapshot()
	if !ok {
		right.Bind(Empty())
		return
	}
	entry, ok := s.SelectedEntry()
	if !ok || !entry.Kind.Traversable() {
		right.Bind(Empty())
		return
	}
	target, _ := s.SelectedPath()
	preview, err := nav.load(ctx, target)
	if err != nil {
		right.Bind(Empty())
		return
	}
	right.Bind(Loaded(preview))
}

// Descend enters the selected directory. Selections that are not
// directories or links, and targets that cannot be read, are no-ops.
func (nav *Navigator) Descend(ctx context.Context) Redraw {
	s, ok := nav.ring.Center().Snapshot()
	if !ok {
		return RedrawNone
	}
	entry, ok := s.SelectedEntry()
	if !ok || !entry.Kind.Traversable() {
		return RedrawNone
	}
	target, _ := s.SelectedPath()
	snapshot, err := nav.load(ctx, target)
	if err != nil {
		return RedrawNone
	}
	if !nav.ring.EnterDirectory(snapshot) {
		return RedrawNone
	}
	nav.log.WithField("dir", target).WithField("center_slot", nav.ring.CenterSlot()).Debug("descended")
	nav.RefreshPreview(ctx)
	return RedrawFull
}

// Ascend makes the parent the current directory. It is a no-op at the
// filesystem root or when the parent could not be read.
func (nav *Navigator) Ascend(ctx context.Context) Redraw {
	parent, ok := nav.ring.Left().Snapshot()
	if !ok {
		return RedrawNone
	}
	var leaving string
	if current, ok := nav.ring.Center().Snapshot(); ok {
		leaving = current.Location()
	}
	grandparent := nav.loadParent(ctx, parent.Location())
	if !nav.ring.LeaveDirectory(grandparent) {
		return RedrawNone
	}
	if leaving != "" && filepath.Dir(leaving) == parent.Location() {
		parent.SelectName(filepath.Base(leaving))
	}
	nav.log.WithField("dir", parent.Location()).WithField("center_slot", nav.ring.CenterSlot()).Debug("ascended")
	nav.RefreshPreview(ctx)
	return RedrawFull
}

// MoveCursor moves the center selection by delta.
func (nav *Navigator) MoveCursor(ctx context.Context, delta int) Redraw {
	center := nav.ring.Center()
	s, ok := center.Snapshot()
	if !ok {
		return RedrawNone
	}
	before, ok := s.Selection()
	if !ok || s.MoveSelection(delta) == before {
		return RedrawNone
	}
	nav.RefreshPreview(ctx)
	return RedrawPartial
}
