package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/topsize/internal/config"
	"github.com/idelchi/topsize/internal/integration"
	"github.com/idelchi/topsize/internal/topsize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flagValues collects the raw flag state for one invocation.
type flagValues struct {
	topN        int
	minSize     string
	output      string
	workers     int
	color       string
	mb          bool
	gb          bool
	index       bool
	interactive bool
	verbose     bool
	version     bool
	init        bool
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	allowedOutputs := []string{"table", "json"}
	allowedColors := []string{"auto", "always", "never"}

	var flags flagValues

	cmd := &cobra.Command{
		Use:   "topsize [path]",
		Short: "Report the largest files under a directory",
		Long: heredoc.Doc(`
			topsize walks a directory tree and reports the N largest files,
			optionally ignoring files below a minimum size.

			The scan is a single pass: nothing is cached between runs. Symbolic
			links are never followed. Unreadable entries are counted and skipped;
			they never abort the scan.

			Defaults can also be set through TOPSIZE_* environment variables
			(e.g. TOPSIZE_TOP=25); explicit flags win.

			Use --init to print a zsh widget that pipes results through 'fzf'.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if flags.init {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return nil
			}

			if !slices.Contains(allowedOutputs, flags.output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", flags.output, allowedOutputs)
			}

			if !slices.Contains(allowedColors, flags.color) {
				return fmt.Errorf("invalid color mode %q: must be one of %v", flags.color, allowedColors)
			}

			if flags.mb && flags.gb {
				return errors.New("--mb and --gb are mutually exclusive")
			}

			if flags.interactive && flags.output == "json" {
				return errors.New("--interactive requires table output")
			}

			// Parse minSize string to bytes
			minSize, err := humanize.ParseBytes(flags.minSize)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options := topsize.Options{
				MinSize:          int64(minSize), //nolint:gosec // Size conversion from humanize is safe
				TopN:             flags.topN,
				Workers:          flags.workers,
				ProgressInterval: cfg.ProgressInterval,
			}

			if len(args) > 0 {
				options.Path = args[0]
			}

			unit := UnitBytes

			switch {
			case flags.mb:
				unit = UnitMegabytes
			case flags.gb:
				unit = UnitGigabytes
			}

			return logic(options, viewOptions{
				output:      flags.output,
				colorMode:   flags.color,
				unit:        unit,
				index:       flags.index,
				interactive: flags.interactive,
				verbose:     flags.verbose,
			})
		},
	}

	set := cmd.Flags()
	set.SortFlags = false

	set.IntVarP(&flags.topN, "top", "n", cfg.TopN, "Number of largest files to report")
	set.StringVar(&flags.minSize, "min-size", cfg.MinSize, "Minimum file size to consider (e.g. 1MB)")
	set.StringVarP(&flags.output, "output", "o", cfg.Output, "Output format: json or table")
	set.BoolVar(&flags.mb, "mb", false, "Report sizes in megabytes")
	set.BoolVar(&flags.gb, "gb", false, "Report sizes in gigabytes")
	set.BoolVar(&flags.index, "index", false, "Number the reported files")
	set.IntVar(&flags.workers, "workers", cfg.Workers, "Walker parallelism (0 = automatic)")
	set.StringVar(&flags.color, "color", cfg.Color, "Colored output: auto, always or never")
	set.BoolVarP(&flags.interactive, "interactive", "I", false, "Browse the results interactively after the scan")
	set.BoolVar(&flags.init, "init", false, "Output init script for shell usage")
	set.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")
	set.BoolVarP(&flags.version, "version", "v", false, "Show version and exit")

	return cmd.Execute()
}
