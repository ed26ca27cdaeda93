package millertug

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/datatug/millertug/pkg/files"
	"github.com/datatug/millertug/pkg/files/osfile"
	"github.com/datatug/millertug/pkg/fsutils"
	"github.com/datatug/millertug/pkg/mtlog"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	ExitCodeOK    = 0
	ExitCodeError = 1
)

var signalNotify = signal.Notify
var signalStop = signal.Stop

type sessionOptions struct {
	store  files.Store
	log    logrus.FieldLogger
	styles Styles
}

type SessionOption func(o *sessionOptions)

func WithStore(store files.Store) SessionOption {
	return func(o *sessionOptions) {
		o.store = store
	}
}

func WithLogger(log logrus.FieldLogger) SessionOption {
	return func(o *sessionOptions) {
		o.log = log
	}
}

func WithStyles(styles Styles) SessionOption {
	return func(o *sessionOptions) {
		o.styles = styles
	}
}

// Session owns the terminal for the lifetime of the browser: the screen,
// the pane ring and the input controller.
type Session struct {
	o      sessionOptions
	screen tcell.Screen
	ring   *PaneRing
	nav    *Navigator
	input  *InputController
	styles Styles
	log    logrus.FieldLogger

	tornDown   bool
	stopSignal func()
}

// NewSession takes ownership of an initialized screen. The screen is
// finalized by Run on every exit path.
func NewSession(screen tcell.Screen, options ...SessionOption) *Session {
	s := &Session{
		screen: screen,
		o: sessionOptions{
			store:  osfile.NewStore(),
			log:    mtlog.Discard(),
			styles: Style,
		},
	}
	for _, option := range options {
		option(&s.o)
	}
	s.styles = s.o.styles
	s.log = s.o.log
	width, height := screen.Size()
	s.ring = NewPaneRing(width, height)
	s.nav = NewNavigator(s.ring, s.o.store, s.log)
	s.input = NewInputController(s.nav, s.log)
	return s
}

func (s *Session) Ring() *PaneRing {
	return s.ring
}

func (s *Session) Input() *InputController {
	return s.input
}

// Run browses starting at dir ("" for the working directory) until the user
// quits or interrupts. It returns the process exit code; a non-nil error
// means the browser could not start.
func (s *Session) Run(ctx context.Context, dir string) (exitCode int, err error) {
	defer s.teardown() // also runs while a panic unwinds

	s.stopSignal = relaySignals(s.screen)

	if dir, err = fsutils.Canonicalize(dir); err != nil {
		return ExitCodeError, err
	}
	if err = s.nav.Init(ctx, dir); err != nil {
		return ExitCodeError, err
	}
	s.log.WithField("dir", dir).Info("session started")
	s.render(RedrawFull)

	for {
		switch exit := s.handleEvent(ctx, s.screen.PollEvent()); exit {
		case ExitQuit:
			s.log.Info("quit")
			return ExitCodeOK, nil
		case ExitInterrupt:
			s.log.Info("interrupted")
			return ExitCodeError, nil
		}
	}
}

func (s *Session) handleEvent(ctx context.Context, event tcell.Event) ExitKind {
	switch ev := event.(type) {
	case nil:
		// PollEvent gives nil once the screen is gone.
		return ExitInterrupt
	case *tcell.EventInterrupt:
		return ExitInterrupt
	case *tcell.EventResize:
		width, height := ev.Size()
		s.ring.Layout(width, height)
		s.screen.Sync()
		s.render(RedrawFull)
	case *tcell.EventKey:
		result := s.input.HandleKey(ctx, ev)
		if result.Exit != ExitNone {
			return result.Exit
		}
		s.render(result.Redraw)
	}
	return ExitNone
}

// teardown is the single place the terminal is given back: raw mode off,
// alternate screen left. It runs at most once.
func (s *Session) teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	if s.stopSignal != nil {
		s.stopSignal()
	}
	s.screen.Fini()
}

// relaySignals turns SIGINT and SIGTERM into interrupt events so they are
// handled by the event loop like Ctrl+C.
func relaySignals(screen tcell.Screen) (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signalNotify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-signals:
			_ = screen.PostEvent(tcell.NewEventInterrupt(sig))
		case <-done:
		}
	}()
	return func() {
		signalStop(signals)
		close(done)
	}
}
