package millertug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const commandPrompt = ":"

func (s *Session) render(redraw Redraw) {
	if redraw == RedrawNone {
		return
	}
	screen := s.screen
	switch redraw {
	case RedrawFull:
		screen.Clear()
		for _, role := range roles {
			s.ring.Pane(role).Render(screen, s.styles, role == RoleCenter)
		}
		s.drawCommandLine()
	case RedrawPartial:
		for _, role := range []Role{RoleCenter, RoleRight} {
			pane := s.ring.Pane(role)
			pane.Clear(screen)
			pane.Render(screen, s.styles, role == RoleCenter)
		}
	case RedrawCommandLine:
		s.drawCommandLine()
	}
	s.placeCursor()
	screen.Show()
}

func (s *Session) commandLineRow() int {
	_, height := s.ring.Size()
	return max(height-1, 0)
}

// drawCommandLine clears the bottom row and, in command mode, draws the
// prompt and the text typed so far.
func (s *Session) drawCommandLine() {
	width, _ := s.ring.Size()
	row := s.commandLineRow()
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	if s.input.Mode() != ModeCommand {
		return
	}
	text := commandPrompt + tview.Escape(s.input.CommandLine())
	tview.Print(s.screen, text, 0, row, width, tview.AlignLeft, s.styles.CommandLineColor)
}

// placeCursor puts a steady block on the selected row in browse mode and
// a blinking block after the typed text in command mode.
func (s *Session) placeCursor() {
	if s.input.Mode() == ModeCommand {
		width := tview.TaggedStringWidth(commandPrompt + tview.Escape(s.input.CommandLine()))
		s.screen.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
		s.screen.ShowCursor(width, s.commandLineRow())
		return
	}
	center := s.ring.Center()
	rect := center.Rect()
	row, ok := center.SelectionRow()
	if !ok {
		row = rect.Y
	}
	s.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	s.screen.ShowCursor(rect.X, row)
}
