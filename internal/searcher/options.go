package searcher

import "time"

// Options contains all search parameters for one pipeline run. An
// Options value is built once by the caller and never mutated by the
// pipeline; the zero value of each limit disables it.
type Options struct {
	// Root is the directory to search. Defaults to "." when empty.
	Root string

	// Patterns are the literal byte sequences to search file contents
	// for. At least one non-empty pattern is required.
	Patterns []string

	// Extensions restricts scanning to paths ending with one of these
	// suffixes, separator included (e.g. ".go"). Empty admits all.
	Extensions []string

	// Excludes are glob patterns matched against each candidate's
	// slash-separated path relative to Root. Matching files are
	// skipped.
	Excludes []string

	// MaxFileSize skips files whose size exceeds this many bytes.
	// Files of exactly this size are still scanned. 0 = unlimited.
	MaxFileSize int64

	// MaxQueued caps how many files are queued for scanning. Once the
	// cap is reached enumeration stops; further candidates are never
	// considered and are not recorded as skips. 0 = unlimited.
	MaxQueued int

	// ChangedAfter and ChangedBefore bound the modification time of
	// queued files. nil disables the corresponding bound.
	ChangedAfter  *time.Time
	ChangedBefore *time.Time

	// Jobs is the number of concurrent file scans. Values below 1 are
	// treated as 1 (strictly sequential, queue order).
	Jobs int

	// Progress, when non-nil, is invoked after each enumerated file
	// has been classified, with the running queued and examined
	// counts. It has no influence on classification.
	Progress func(queued, examined int)

	// ScanProgress, when non-nil, is invoked as the scan of each
	// queued file begins. index is 1-based; total is the queue length.
	ScanProgress func(index, total int, path string)
}
