// Package searcher implements the literal multi-pattern content
// search pipeline: enumerate files under a root, filter them into a
// scan queue, run one shared automaton over each queued file, and
// aggregate the per-file outcomes.
package searcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MisanthropicShayna/ContentSearch/internal/matcher"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"
)

// outcome is the scan result for a single queued file.
type outcome struct {
	patterns []string
	reason   SkipReason
}

// Search runs the full pipeline and returns the aggregated results.
//
// The pipeline is strictly staged: the pattern automaton is built
// once, queue construction completes before the first file is opened,
// and every queued file is then scanned with the shared automaton.
// Per-file failures become skip records and never abort the run; only
// configuration errors and root-level enumeration failures (or ctx
// cancellation) return an error.
func Search(ctx context.Context, opts *Options) (*Results, error) {
	m, err := matcher.New(opts.Patterns)
	if err != nil {
		return nil, err
	}

	for _, glob := range opts.Excludes {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", glob)
		}
	}

	results := &Results{}
	queue, err := buildQueue(opts, results)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// Scans run under a bounded semaphore and record their outcome by
	// queue index, so bucket order below is always queue order even
	// when Jobs > 1. Jobs == 1 degenerates to the sequential case.
	outcomes := make([]outcome, len(queue))
	sem := semaphore.NewWeighted(int64(jobs))
	var wg sync.WaitGroup

	total := len(queue)
	for i, path := range queue {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			if opts.ScanProgress != nil {
				opts.ScanProgress(i+1, total, path)
			}
			outcomes[i] = scanFile(m, path)
		}(i, path)
	}

	wg.Wait()

	for i, path := range queue {
		o := outcomes[i]
		switch {
		case o.reason != "":
			results.skip(path, o.reason)
		case len(o.patterns) > 0:
			results.Matched = append(results.Matched, MatchedFile{Path: path, Patterns: o.patterns})
		default:
			results.Unmatched = append(results.Unmatched, path)
		}
	}

	return results, nil
}

// scanFile reads path in full and runs the shared automaton over its
// contents once.
func scanFile(m *matcher.Matcher, path string) outcome {
	f, err := os.Open(path)
	if err != nil {
		return outcome{reason: SkipOpen}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return outcome{reason: SkipRead}
	}

	return outcome{patterns: m.Unique(data)}
}
