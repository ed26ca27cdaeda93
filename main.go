package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/datatug/millertug/pkg/millertug"
	"github.com/datatug/millertug/pkg/mtlog"
	"github.com/datatug/millertug/pkg/profiling"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	debugLog   string
	style      string
	cpuProfile string
	memProfile string
	pprofAddr  string
}

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var newScreen = tcell.NewScreen
var stderr io.Writer = os.Stderr
var osArgs = func() []string { return os.Args[1:] }

func main() {
	osExit(execute(osArgs()))
}

func execute(args []string) (exitCode int) {
	cmd := newRootCommand(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return millertug.ExitCodeError
	}
	return exitCode
}

func newRootCommand(exitCode *int) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "millertug",
		Short:         "Three pane terminal directory browser",
		Long:          "millertug browses the current directory in Miller columns: parent, current and preview.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			*exitCode = run(cmd.Context(), o)
			return nil
		},
	}
	cmd.SetErr(stderr)
	flags := cmd.Flags()
	flags.StringVar(&o.debugLog, "debug-log", "", "append debug log entries to `file`")
	flags.StringVar(&o.style, "style", millertug.DefaultChromaStyle, "chroma `style` used to color file names")
	flags.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&o.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

var run = func(ctx context.Context, o options) int {
	if ctx == nil {
		ctx = context.Background()
	}

	if o.pprofAddr != "" {
		go func() {
			err := httpListenAndServe(o.pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if o.cpuProfile != "" {
		stopCPUProfiling, err := profiling.DoCPUProfiling(o.cpuProfile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", err)
			return millertug.ExitCodeError
		}
		defer stopCPUProfiling()
	}

	if o.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(o.memProfile)
		defer func() {
			if err := writeMemProfile(); err != nil {
				_, _ = fmt.Fprintf(stderr, "%v\n", err)
			}
		}()
	}

	var log logrus.FieldLogger = mtlog.Discard()
	if o.debugLog != "" {
		fileLog, closer, err := mtlog.OpenFile(o.debugLog)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", err)
			return millertug.ExitCodeError
		}
		defer func() {
			_ = closer.Close()
		}()
		log = fileLog
	}

	screen, err := newScreen()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to create screen: %v\n", err)
		return millertug.ExitCodeError
	}
	if err = screen.Init(); err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to initialize screen: %v\n", err)
		return millertug.ExitCodeError
	}

	styles := millertug.Style
	styles.ChromaStyle = o.style
	session := millertug.NewSession(screen,
		millertug.WithLogger(log),
		millertug.WithStyles(styles),
	)
	exitCode, err := session.Run(ctx, "")
	if err != nil {
		// The terminal is restored by now, so the message stays visible.
		_, _ = fmt.Fprintf(stderr, "millertug: %v\n", err)
	}
	return exitCode
}
