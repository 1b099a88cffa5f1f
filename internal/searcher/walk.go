package searcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// buildQueue enumerates regular files under opts.Root and classifies
// each one as queued or skipped, recording skips into results. It
// returns the absolute paths queued for scanning, in traversal order.
//
// A failure to establish the root traversal is fatal and returned as
// an error; any later per-entry failure is recorded as a skip and
// enumeration continues.
func buildQueue(opts *Options, results *Results) ([]string, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", root)
	}

	var queue []string
	examined := 0

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			p := path
			if p == "" {
				p = UnknownPath
			}
			results.skip(p, SkipEnumeration)
			return nil
		}

		// Directories and non-regular entries (sockets, devices,
		// symlinks) are silently excluded, not reported as skips.
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		examined++
		if opts.Progress != nil {
			defer func() { opts.Progress(len(queue), examined) }()
		}

		if !utf8.ValidString(path) {
			results.skip(UnknownPath, SkipPathEncoding)
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}

		fi, err := d.Info()
		if err != nil {
			results.skip(abs, SkipMetadata)
			return nil
		}

		// Hard cutoff: at most MaxQueued files are ever queued.
		// Candidates past the cutoff are not classified at all.
		if opts.MaxQueued > 0 && len(queue) >= opts.MaxQueued {
			return fs.SkipAll
		}

		if pathExcluded(root, path, opts.Excludes) {
			results.skip(abs, SkipExcluded)
			return nil
		}

		if len(opts.Extensions) > 0 && !hasAnySuffix(path, opts.Extensions) {
			results.skip(abs, SkipExtension)
			return nil
		}

		if opts.MaxFileSize > 0 && fi.Size() > opts.MaxFileSize {
			results.skip(abs, SkipSize)
			return nil
		}

		if outsideWindow(fi.ModTime(), opts.ChangedAfter, opts.ChangedBefore) {
			results.skip(abs, SkipModTime)
			return nil
		}

		queue = append(queue, abs)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, walkErr)
	}

	return queue, nil
}

// pathExcluded reports whether any exclude glob matches the path's
// slash-separated form relative to root. Globs are validated before
// the walk starts, so match errors cannot occur here.
func pathExcluded(root, path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, glob := range excludes {
		if matched, _ := doublestar.Match(glob, rel); matched {
			return true
		}
	}
	return false
}

// hasAnySuffix reports whether path ends with one of the suffixes.
// The comparison includes the separator character, so ".rs" admits
// "main.rs" but not "bars".
func hasAnySuffix(path string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// outsideWindow reports whether mod falls outside [after, before].
// A nil bound is open.
func outsideWindow(mod time.Time, after, before *time.Time) bool {
	if after != nil && mod.Before(*after) {
		return true
	}
	if before != nil && mod.After(*before) {
		return true
	}
	return false
}
