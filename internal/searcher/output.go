package searcher

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mgutz/ansi"
)

const ruleWidth = 50

// Output renders search results and progress in the tool's
// line-oriented console format. Report lines go to stdout; transient
// progress lines go to stderr, rewritten in place with a carriage
// return.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	// lastProgress is the rendered width of the previous progress
	// line, used to blank residue from longer messages.
	lastProgress int

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Banner prints the run configuration ahead of the search.
func (o *Output) Banner(opts *Options) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintln(o.stdout, "Performing content search with the following parameters.")
	o.rule()
	fmt.Fprintf(o.stdout, "Search Patterns: %q\n", opts.Patterns)
	fmt.Fprintf(o.stdout, "Target Dir: %s\n", opts.Root)
	fmt.Fprintf(o.stdout, "File Extensions: %q\n", opts.Extensions)
	fmt.Fprintf(o.stdout, "Max File Size: %d\n", opts.MaxFileSize)
	fmt.Fprintf(o.stdout, "Max Queued Files: %d\n", opts.MaxQueued)
	o.rule()
}

// QueueProgress reports queue construction progress. It is shaped to
// serve as an Options.Progress callback.
func (o *Output) QueueProgress(queued, examined int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progressf("Queueing files.. %d / %d Files have been queued..", queued, examined)
}

// ScanProgress reports the start of one queued file's scan. It is
// shaped to serve as an Options.ScanProgress callback.
func (o *Output) ScanProgress(index, total int, path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progressf("[%d / %d] Searching through %s for patterns..", index, total, filepath.Base(path))
}

// EndProgress terminates any in-place progress line.
func (o *Output) EndProgress() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.lastProgress == 0 {
		return
	}
	o.lastProgress = 0
	fmt.Fprintln(o.stderr)
}

// Report renders the three result buckets and the summary line. The
// skipped and unmatched sections are optional; matched files and the
// summary always print.
func (o *Output) Report(results *Results, showSkipped, showUnmatched bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.rule()

	if showSkipped {
		for _, s := range results.Skipped {
			fmt.Fprintf(o.stdout, "%s(%s) - %s\n", o.yellow("SKIPPED"), s.Reason, s.Path)
		}
		o.rule()
	}

	if showUnmatched {
		for _, path := range results.Unmatched {
			fmt.Fprintf(o.stdout, "%s - %s\n", o.red("DIDN'T MATCH"), path)
		}
		o.rule()
	}

	// Pad the pattern column to the widest set so paths line up. The
	// padding is applied before colorizing to keep alignment intact.
	pad := 0
	for _, m := range results.Matched {
		if width := len(fmt.Sprintf("%q", m.Patterns)); width > pad {
			pad = width
		}
	}
	for _, m := range results.Matched {
		list := fmt.Sprintf("%-*s", pad, fmt.Sprintf("%q", m.Patterns))
		fmt.Fprintf(o.stdout, "%s | %s %s\n", o.green(list), o.white("MATCHED IN >"), o.cyan(m.Path))
	}

	o.rule()
	fmt.Fprintf(o.stdout, "Matched %d files, %d unmatched candidates, %d files skipped.\n",
		len(results.Matched), len(results.Unmatched), len(results.Skipped))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

func (o *Output) rule() {
	fmt.Fprintln(o.stdout, strings.Repeat("-", ruleWidth))
}

// progressf rewrites the current terminal line. Callers hold o.mu.
func (o *Output) progressf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) < o.lastProgress {
		msg += strings.Repeat(" ", o.lastProgress-len(msg))
	}
	o.lastProgress = len(msg)
	fmt.Fprintf(o.stderr, "%s\r", msg)
}
