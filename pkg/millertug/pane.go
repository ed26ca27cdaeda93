package millertug

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Rect is a pane's screen region in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Contents is what a pane shows: nothing, or a loaded snapshot.
// The zero value is Empty.
type Contents struct {
	snapshot *Snapshot
}

func Empty() Contents {
	return Contents{}
}

// Loaded wraps s. A nil s gives Empty.
func Loaded(s *Snapshot) Contents {
	return Contents{snapshot: s}
}

func (c Contents) IsEmpty() bool {
	return c.snapshot == nil
}

func (c Contents) Snapshot() (*Snapshot, bool) {
	return c.snapshot, c.snapshot != nil
}

func (c Contents) String() string {
	if c.snapshot == nil {
		return "Empty"
	}
	return fmt.Sprintf("Loaded(%s)", c.snapshot.Location())
}

// Pane is one of the three columns of the browser.
type Pane struct {
	rect     Rect
	contents Contents
	top      int // index of the first entry drawn
}

// Bind replaces the contents wholesale.
func (p *Pane) Bind(contents Contents) {
	p.contents = contents
	p.top = 0
}

func (p *Pane) Contents() Contents {
	return p.contents
}

func (p *Pane) Snapshot() (*Snapshot, bool) {
	return p.contents.Snapshot()
}

func (p *Pane) Rect() Rect {
	return p.rect
}

func (p *Pane) setRect(rect Rect) {
	p.rect = rect
}

// scroll keeps the selected row inside the pane height.
func (p *Pane) scroll() {
	s, ok := p.contents.Snapshot()
	if !ok || p.rect.Height <= 0 {
		p.top = 0
		return
	}
	selection, _ := s.Selection()
	if selection < p.top {
		p.top = selection
	}
	if selection >= p.top+p.rect.Height {
		p.top = selection - p.rect.Height + 1
	}
	if p.top > s.Len()-1 {
		p.top = max(s.Len()-1, 0)
	}
}

// SelectionRow returns the screen row of the selected entry.
func (p *Pane) SelectionRow() (int, bool) {
	s, ok := p.contents.Snapshot()
	if !ok {
		return 0, false
	}
	selection, ok := s.Selection()
	if !ok {
		return 0, false
	}
	p.scroll()
	return p.rect.Y + selection - p.top, true
}

// Clear blanks the pane's region.
func (p *Pane) Clear(screen tcell.Screen) {
	for y := p.rect.Y; y < p.rect.Y+p.rect.Height; y++ {
		for x := p.rect.X; x < p.rect.X+p.rect.Width; x++ {
			screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Render draws one line per entry starting at the pane origin. Lines run to
// the screen edge: long names are not cut at the pane border and may spill
// over the next column. When highlight is set the selected row is reversed.
func (p *Pane) Render(screen tcell.Screen, styles Styles, highlight bool) {
	screen.ShowCursor(p.rect.X, p.rect.Y)
	defer screen.ShowCursor(p.rect.X, p.rect.Y)

	s, ok := p.contents.Snapshot()
	if !ok {
		return
	}
	p.scroll()
	screenWidth, _ := screen.Size()
	maxWidth := screenWidth - p.rect.X
	if maxWidth <= 0 {
		return
	}
	selection, _ := s.Selection()
	entries := s.Entries()
	for row := 0; row < p.rect.Height; row++ {
		i := p.top + row
		if i >= len(entries) {
			break
		}
		entry := entries[i]
		text := tview.Escape(entry.Label())
		if highlight && i == selection {
			text = "[::r]" + text + "[::-]"
		}
		tview.Print(screen, text, p.rect.X, p.rect.Y+row, maxWidth, tview.AlignLeft, GetColorByEntry(entry, styles))
	}
}
