package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/idelchi/topsize/internal/topsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// MinPathWidth is the smallest width the path column may shrink to.
	MinPathWidth = 10
)

// Unit selects how byte sizes are rendered.
type Unit int

const (
	// UnitBytes renders exact byte counts with thousands separators.
	UnitBytes Unit = iota
	// UnitMegabytes renders sizes as fixed-point megabytes.
	UnitMegabytes
	// UnitGigabytes renders sizes as fixed-point gigabytes.
	UnitGigabytes
)

// Heading returns the size column heading for the unit.
func (u Unit) Heading() string {
	switch u {
	case UnitMegabytes:
		return "Size (Mb)"
	case UnitGigabytes:
		return "Size (Gb)"
	default:
		return "Size"
	}
}

// Format renders a byte count in the unit.
func (u Unit) Format(size int64) string {
	switch u {
	case UnitMegabytes:
		return humanize.FormatFloat("#,###.###", float64(size)/(1<<20))
	case UnitGigabytes:
		return humanize.FormatFloat("#,###.###", float64(size)/(1<<30))
	default:
		return humanize.Comma(size)
	}
}

// TableOptions controls table rendering.
type TableOptions struct {
	// Unit selects the size column rendering.
	Unit Unit
	// Index numbers the rows starting from the largest file.
	Index bool
	// Width is the terminal width; 0 disables path truncation.
	Width int
	// DiskUsage adds a disk usage footer when set.
	DiskUsage *disk.UsageStat
}

// styles holds color formatters for table output.
type styles struct {
	title  *color.Color
	errors *color.Color
	empty  *color.Color
}

// newStyles creates color formatters for table output.
// enabled=false respects --color=never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		title:  color.New(color.Bold),
		errors: color.New(color.FgRed),
		empty:  color.New(color.FgYellow),
	}

	if !enabled {
		s.title.DisableColor()
		s.errors.DisableColor()
		s.empty.DisableColor()
	}

	return s
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *topsize.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan result in human-readable table format.
func PrintTable(result *topsize.Result, writer io.Writer, opts TableOptions) error {
	s := newStyles(!color.NoColor)

	if len(result.Top) == 0 {
		fmt.Fprintln(writer, s.empty.Sprint("No files matched."))
		printSummary(result, writer, opts, s)

		return nil
	}

	fmt.Fprintln(writer, s.title.Sprint("Scan Results"))

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if opts.Index {
		fmt.Fprint(w, "#\t")
	}

	fmt.Fprintf(w, "%s\tCreated\tModified\tAccessed\tPath\n", opts.Unit.Heading())

	maxPath := pathWidth(opts)

	for i, rec := range result.Top {
		if opts.Index {
			fmt.Fprintf(w, "%d\t", i+1)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			opts.Unit.Format(rec.Size),
			formatDate(rec.Created),
			formatDate(rec.Modified),
			formatDate(rec.Accessed),
			truncatePath(rec.Path, maxPath),
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	printSummary(result, writer, opts, s)

	return nil
}

// printSummary writes the closing status lines under the table.
func printSummary(result *topsize.Result, writer io.Writer, opts TableOptions, s *styles) {
	stats := result.Stats

	errorText := humanize.Comma(stats.ErrorCount)
	if stats.PermissionDenied > 0 {
		errorText = fmt.Sprintf("%s (%s permission blocked)",
			errorText, humanize.Comma(stats.PermissionDenied))
	}

	if stats.ErrorCount > 0 {
		errorText = s.errors.Sprint(errorText)
	}

	fmt.Fprintf(writer, "\nDone. Scanned: %s files, %s dirs, %s errors in %.3fs.\n",
		humanize.Comma(stats.FileCount),
		humanize.Comma(stats.DirCount),
		errorText,
		stats.Elapsed.Seconds(),
	)

	if opts.DiskUsage != nil {
		fmt.Fprintf(writer, "Total disk size: %s, used: %.2f%%\n",
			humanize.IBytes(opts.DiskUsage.Total),
			opts.DiskUsage.UsedPercent,
		)
	}
}

// formatDate renders a timestamp as YYYY-MM-DD, or "-" when unknown.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02")
}

// pathWidth returns the room left for the path column given the usual
// widths of the fixed columns. 0 means unlimited.
func pathWidth(opts TableOptions) int {
	if opts.Width <= 0 {
		return 0
	}

	fixed := 15 + TabSpacing + 3*(10+TabSpacing)
	if opts.Index {
		fixed += 4 + TabSpacing
	}

	if opts.Width-fixed < MinPathWidth {
		return MinPathWidth
	}

	return opts.Width - fixed
}

// truncatePath hard-cuts a path so each record stays on one terminal
// row. max <= 0 disables truncation.
func truncatePath(path string, max int) string {
	if max <= 0 {
		return path
	}

	runes := []rune(path)
	if len(runes) <= max {
		return path
	}

	return string(runes[:max])
}
