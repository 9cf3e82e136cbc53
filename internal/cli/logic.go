package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/disk"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/idelchi/topsize/internal/explore"
	"github.com/idelchi/topsize/internal/topsize"
)

// viewOptions carries the presentation side of one invocation.
type viewOptions struct {
	output      string
	colorMode   string
	unit        Unit
	index       bool
	interactive bool
	verbose     bool
}

// newLogger builds the CLI logger: a development logger when verbose,
// otherwise errors only.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	return cfg.Build()
}

func logic(options topsize.Options, view viewOptions) error {
	logger, err := newLogger(view.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	options.Logger = logger

	switch view.colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		// Check if stdout is a TTY and NO_COLOR is not set
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}

	enableProgress := strings.ToLower(view.output) != "json" &&
		!view.verbose &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(topsize.Progress)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(p topsize.Progress) {
			msg := fmt.Sprintf("Scanning… %s files, %s dirs, %s",
				humanize.Comma(p.Files),
				humanize.Comma(p.Dirs),
				humanize.IBytes(uint64(p.Bytes))) //nolint:gosec // Bytes is always positive
			if p.Errors > 0 {
				msg = fmt.Sprintf("%s (%s errors)", msg, humanize.Comma(p.Errors))
			}
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := topsize.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if view.interactive {
		return browse(result, view)
	}

	switch strings.ToLower(view.output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	case "table":
		return printTableStdout(result, view, logger)
	default:
		return fmt.Errorf("unknown output format: %s", view.output)
	}
}

// printTableStdout renders the table to stdout with terminal-aware
// truncation and the disk usage footer.
func printTableStdout(result *topsize.Result, view viewOptions, logger *zap.Logger) error {
	opts := TableOptions{
		Unit:  view.unit,
		Index: view.index,
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width = width
	}

	if usage, err := disk.Usage(result.Root); err == nil {
		opts.DiskUsage = usage
	} else {
		logger.Debug("reading disk usage", zap.String("path", result.Root), zap.Error(err))
	}

	return PrintTable(result, os.Stdout, opts)
}

// browse hands the result to the interactive viewer.
func browse(result *topsize.Result, view viewOptions) error {
	model := explore.New(result, explore.Options{
		FormatSize: view.unit.Format,
		SizeLabel:  view.unit.Heading(),
		Index:      view.index,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running results browser: %w", err)
	}

	return nil
}
