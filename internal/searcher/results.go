package searcher

// SkipReason identifies why a candidate file never reached the
// matched/unmatched classification.
type SkipReason string

const (
	// SkipEnumeration means traversal could not yield the entry.
	SkipEnumeration SkipReason = "enumeration-error"
	// SkipPathEncoding means the path is not valid UTF-8.
	SkipPathEncoding SkipReason = "path-encoding"
	// SkipMetadata means the file's size or attributes could not be read.
	SkipMetadata SkipReason = "metadata-error"
	// SkipExcluded means an exclude glob matched the path.
	SkipExcluded SkipReason = "excluded"
	// SkipExtension means no allow-listed suffix matched the path.
	SkipExtension SkipReason = "extension-mismatch"
	// SkipSize means the file exceeded the configured size cap.
	SkipSize SkipReason = "size-exceeded"
	// SkipModTime means the modification time fell outside the
	// configured window.
	SkipModTime SkipReason = "mtime-excluded"
	// SkipOpen means a queued file could not be opened for scanning.
	SkipOpen SkipReason = "open-error"
	// SkipRead means a queued file could not be read in full.
	SkipRead SkipReason = "read-error"
)

// UnknownPath is recorded when a skipped entry's path cannot be
// recovered.
const UnknownPath = "unknown"

// SkippedFile records one file that never reached scanning, or whose
// scan failed. Every file is skipped at most once, for exactly one
// reason.
type SkippedFile struct {
	Path   string
	Reason SkipReason
}

// MatchedFile records a scanned file together with the deduplicated
// patterns found in it, ordered by first occurrence.
type MatchedFile struct {
	Path     string
	Patterns []string
}

// Results partitions every classified candidate into exactly one of
// three buckets. Each bucket preserves processing order.
type Results struct {
	Matched   []MatchedFile
	Skipped   []SkippedFile
	Unmatched []string
}

func (r *Results) skip(path string, reason SkipReason) {
	r.Skipped = append(r.Skipped, SkippedFile{Path: path, Reason: reason})
}
