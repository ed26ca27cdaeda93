package millertug

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeCommand
)

func (m Mode) String() string {
	if m == ModeCommand {
		return "command"
	}
	return "browse"
}

// ExitKind tells the session whether and how to stop.
type ExitKind int

const (
	ExitNone ExitKind = iota
	ExitQuit
	ExitInterrupt
)

// Result of handling one key.
type Result struct {
	Exit   ExitKind
	Redraw Redraw
}

type navigation interface {
	MoveCursor(ctx context.Context, delta int) Redraw
	Descend(ctx context.Context) Redraw
	Ascend(ctx context.Context) Redraw
}

// InputController routes keys according to the current mode and edits
// the command line.
type InputController struct {
	mode   Mode
	buffer []rune
	nav    navigation
	log    logrus.FieldLogger
}

func NewInputController(nav navigation, log logrus.FieldLogger) *InputController {
	return &InputController{nav: nav, log: log}
}

func (c *InputController) Mode() Mode {
	return c.mode
}

// CommandLine is the text typed after the ':' prompt.
func (c *InputController) CommandLine() string {
	return string(c.buffer)
}

func (c *InputController) HandleKey(ctx context.Context, event *tcell.EventKey) Result {
	if isInterrupt(event) {
		return Result{Exit: ExitInterrupt}
	}
	if c.mode == ModeCommand {
		return c.commandKey(event)
	}
	return c.browseKey(ctx, event)
}

func isInterrupt(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyCtrlC {
		return true
	}
	return event.Key() == tcell.KeyRune && event.Modifiers()&tcell.ModCtrl != 0 &&
		(event.Rune() == 'c' || event.Rune() == 'C')
}

// plainRune returns the typed character for rune keys without Ctrl, Alt or
// Meta. Shift is allowed since terminals report it for ':' and capitals.
func plainRune(event *tcell.EventKey) (rune, bool) {
	if event.Key() != tcell.KeyRune {
		return 0, false
	}
	if event.Modifiers()&^tcell.ModShift != 0 {
		return 0, false
	}
	return event.Rune(), true
}

func (c *InputController) browseKey(ctx context.Context, event *tcell.EventKey) Result {
	if r, ok := plainRune(event); ok {
		switch r {
		case ':':
			c.enterCommand()
			return Result{Redraw: RedrawCommandLine}
		case 'q':
			return Result{Exit: ExitQuit}
		case 'j':
			return Result{Redraw: c.nav.MoveCursor(ctx, +1)}
		case 'k':
			return Result{Redraw: c.nav.MoveCursor(ctx, -1)}
		case 'l':
			return Result{Redraw: c.nav.Descend(ctx)}
		case 'h':
			return Result{Redraw: c.nav.Ascend(ctx)}
		}
		return Result{}
	}
	if event.Modifiers() != tcell.ModNone {
		return Result{}
	}
	switch event.Key() {
	case tcell.KeyDown:
		return Result{Redraw: c.nav.MoveCursor(ctx, +1)}
	case tcell.KeyUp:
		return Result{Redraw: c.nav.MoveCursor(ctx, -1)}
	case tcell.KeyRight:
		return Result{Redraw: c.nav.Descend(ctx)}
	case tcell.KeyLeft:
		return Result{Redraw: c.nav.Ascend(ctx)}
	}
	return Result{}
}

func (c *InputController) commandKey(event *tcell.EventKey) Result {
	if r, ok := plainRune(event); ok {
		c.buffer = append(c.buffer, r)
		return Result{Redraw: RedrawCommandLine}
	}
	if event.Modifiers()&^tcell.ModShift != 0 {
		return Result{}
	}
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.buffer) == 0 {
			return Result{}
		}
		c.buffer = c.buffer[:len(c.buffer)-1]
		return Result{Redraw: RedrawCommandLine}
	case tcell.KeyEscape:
		c.enterBrowse()
		return Result{Redraw: RedrawCommandLine}
	case tcell.KeyEnter:
		command := string(c.buffer)
		c.enterBrowse()
		return Result{Exit: c.dispatch(command), Redraw: RedrawCommandLine}
	}
	return Result{}
}

func (c *InputController) enterCommand() {
	c.buffer = c.buffer[:0]
	c.mode = ModeCommand
}

func (c *InputController) enterBrowse() {
	c.buffer = nil
	c.mode = ModeBrowse
}

func (c *InputController) dispatch(command string) ExitKind {
	switch command {
	case "q", "quit":
		return ExitQuit
	default:
		c.log.WithField("command", command).Debug("ignored unknown command")
		return ExitNone
	}
}
