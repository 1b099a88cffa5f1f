package cmd

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/MisanthropicShayna/ContentSearch/internal/searcher"
	"github.com/MisanthropicShayna/ContentSearch/internal/timeparse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color         = colorAuto
	dir           string
	maxFileSize   string
	maxQueued     int
	extensions    []string
	excludes      []string
	changedAfter  string
	changedBefore string
	showSkipped   bool
	showUnmatched bool
	jobs          int
)

var rootCmd = &cobra.Command{
	Use:   "contentsearch [flags] <pattern>...",
	Short: "Search a directory tree's file contents for literal patterns",
	Long: `contentsearch recursively enumerates the files under a directory,
filters them into a scan queue, and searches each queued file's raw
bytes for every given pattern at once.

<pattern> arguments are literal byte sequences, matched exactly and
case-sensitively. All patterns are searched in a single pass per file,
so overlapping and nested patterns are all found.

Each discovered file ends up in exactly one bucket:
  matched    one or more patterns occur in the file
  unmatched  the file was scanned but no pattern occurred
  skipped    the file was rejected before or during scanning, with a
             reason (extension-mismatch, size-exceeded, open-error, ...)

Examples:
  contentsearch -d src TODO FIXME
  contentsearch -e .c -e .h "malloc(" "free("
  contentsearch -e .cpp:.hpp -s 1M secret_key
  contentsearch --show-skipped --show-unmatched -q 500 password
  contentsearch -E "vendor/**" --changed-after 2w api_token`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 64 {
			return fmt.Errorf("--jobs must be between 1 and 64, got %d", jobs)
		}
		if maxQueued < 0 {
			return fmt.Errorf("--max-queued cannot be negative, got %d", maxQueued)
		}
		for _, pattern := range args {
			if pattern == "" {
				return fmt.Errorf("patterns cannot be empty")
			}
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&dir, "dir", "d", ".",
		"root directory to search")
	rootCmd.Flags().StringVarP(&maxFileSize, "max-file-size", "s", "",
		"skip files larger than this size (e.g., 5M, 500k)")
	rootCmd.Flags().IntVarP(&maxQueued, "max-queued", "q", 0,
		"queue at most this many files for scanning (0 = unlimited)")
	rootCmd.Flags().StringSliceVarP(&extensions, "ext", "e", []string{},
		"only queue files with one of these extensions (repeatable, ':'-separable)")
	rootCmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"exclude files whose relative path matches this glob (repeatable)")
	rootCmd.Flags().StringVar(&changedAfter, "changed-after", "",
		"only queue files modified after this time (e.g., 2d, 2018-10-27)")
	rootCmd.Flags().StringVar(&changedBefore, "changed-before", "",
		"only queue files modified before this time (e.g., 1w, 2018-10-27)")
	rootCmd.Flags().BoolVar(&showSkipped, "show-skipped", false,
		"list skipped files and the reason each was skipped")
	rootCmd.Flags().BoolVar(&showUnmatched, "show-unmatched", false,
		"list queued files that matched no pattern")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 1,
		"number of files scanned concurrently")
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
}

func Execute() error {
	return rootCmd.Execute()
}

// parseByteSize parses a human-readable size string into bytes.
// Supports formats like "1M", "500k", "1.5G", "1024" (plain bytes).
// Units are case-insensitive and use binary (1024-based) multipliers.
func parseByteSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Find where the unit starts (last non-digit character)
	i := len(s) - 1
	for i >= 0 && !unicode.IsDigit(rune(s[i])) && s[i] != '.' {
		i--
	}

	// Parse the number part
	numStr := s[:i+1]
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	if num < 0 {
		return 0, fmt.Errorf("size cannot be negative")
	}

	// Parse the unit suffix
	unit := strings.ToLower(strings.TrimSpace(s[i+1:]))
	var multiplier float64
	switch unit {
	case "", "b":
		multiplier = 1
	case "k", "kb", "kib":
		multiplier = 1024
	case "m", "mb", "mib":
		multiplier = 1024 * 1024
	case "g", "gb", "gib":
		multiplier = 1024 * 1024 * 1024
	case "t", "tb", "tib":
		multiplier = 1024 * 1024 * 1024 * 1024
	case "p", "pb", "pib":
		multiplier = 1024 * 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown unit %q (supported: b, k, m, g, t, p)", unit)
	}

	result := num * multiplier
	if result > float64(math.MaxInt64) {
		return 0, fmt.Errorf("size too large (exceeds max int64)")
	}

	return int64(result), nil
}

// splitExtensions normalizes the --ext values. Each value may itself
// be a ':'-separated list (the ".cpp:.hpp" form), and a missing
// leading dot is added.
func splitExtensions(values []string) []string {
	var exts []string
	for _, value := range values {
		for _, ext := range strings.Split(value, ":") {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			exts = append(exts, ext)
		}
	}
	return exts
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	var maxFileSizeBytes int64
	if maxFileSize != "" {
		size, err := parseByteSize(maxFileSize)
		if err != nil {
			return fmt.Errorf("invalid --max-file-size %q: %w", maxFileSize, err)
		}
		maxFileSizeBytes = size
	}

	now := time.Now()

	var after, before *time.Time
	if changedAfter != "" {
		t, err := timeparse.ParsePoint(changedAfter, now)
		if err != nil {
			return fmt.Errorf("invalid --changed-after: %w", err)
		}
		after = &t
	}
	if changedBefore != "" {
		t, err := timeparse.ParsePoint(changedBefore, now)
		if err != nil {
			return fmt.Errorf("invalid --changed-before: %w", err)
		}
		before = &t
	}
	if after != nil && before != nil && after.After(*before) {
		return fmt.Errorf("--changed-after cannot be later than --changed-before")
	}

	output := searcher.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)

	opts := &searcher.Options{
		Root:          dir,
		Patterns:      args,
		Extensions:    splitExtensions(extensions),
		Excludes:      excludes,
		MaxFileSize:   maxFileSizeBytes,
		MaxQueued:     maxQueued,
		ChangedAfter:  after,
		ChangedBefore: before,
		Jobs:          jobs,
		Progress:      output.QueueProgress,
		ScanProgress:  output.ScanProgress,
	}

	output.Banner(opts)

	results, err := searcher.Search(ctx, opts)
	output.EndProgress()
	if err != nil {
		return err
	}

	if len(results.Matched)+len(results.Unmatched) == 0 {
		output.Warningf("No files were queued for scanning")
	}

	output.Report(results, showSkipped, showUnmatched)
	return nil
}
