// Package matcher implements simultaneous literal multi-pattern search
// over byte buffers.
//
// A Matcher is an Aho-Corasick automaton compiled once from a pattern
// set and reused for every buffer it scans. Construction cost is
// proportional to the total pattern bytes; scanning cost is
// proportional to the buffer length plus the number of occurrences,
// independent of the number of patterns. Matching is byte-exact and
// case-sensitive, and overlapping or nested occurrences (including
// patterns that are substrings of other patterns) are all reported.
package matcher

import (
	"errors"
	"sort"
)

// Sentinel errors for matcher construction.
var (
	// ErrNoPatterns indicates an empty pattern set.
	ErrNoPatterns = errors.New("matcher: pattern set is empty")
	// ErrEmptyPattern indicates a zero-length pattern in the set.
	ErrEmptyPattern = errors.New("matcher: empty pattern")
)

// Match is a single occurrence of a pattern within a scanned buffer.
type Match struct {
	Pattern string // the pattern that occurred
	Start   int    // offset of the occurrence's first byte
	End     int    // offset one past the occurrence's last byte
}

// node is a single state in the automaton. State 0 is the root.
type node struct {
	next map[byte]int32 // goto edges
	fail int32          // longest proper suffix state
	dict int32          // nearest terminal state on the fail chain, 0 if none
	out  int32          // pattern index terminating here, -1 if none
}

// Matcher is a compiled multi-pattern automaton. It is immutable after
// construction and safe for concurrent use by multiple goroutines.
type Matcher struct {
	nodes    []node
	patterns []string
}

// New compiles patterns into a Matcher. The set must be non-empty and
// every pattern must be at least one byte long; duplicate patterns
// collapse into a single logical pattern.
func New(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	m := &Matcher{
		nodes: []node{{next: make(map[byte]int32), out: -1}},
	}

	seen := make(map[string]bool, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			return nil, ErrEmptyPattern
		}
		if seen[pattern] {
			continue
		}
		seen[pattern] = true
		m.insert(pattern)
	}

	m.compile()
	return m, nil
}

// PatternCount returns the number of logical (deduplicated) patterns.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

// insert adds one pattern to the goto trie.
func (m *Matcher) insert(pattern string) {
	s := int32(0)
	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		t, ok := m.nodes[s].next[b]
		if !ok {
			t = int32(len(m.nodes))
			m.nodes = append(m.nodes, node{next: make(map[byte]int32), out: -1})
			m.nodes[s].next[b] = t
		}
		s = t
	}
	m.nodes[s].out = int32(len(m.patterns))
	m.patterns = append(m.patterns, pattern)
}

// compile computes fail and dict links in breadth-first order, so that
// every state's links are final before its children are processed.
func (m *Matcher) compile() {
	queue := make([]int32, 0, len(m.nodes))
	for _, t := range m.nodes[0].next {
		queue = append(queue, t)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		f := m.nodes[u].fail
		if m.nodes[f].out >= 0 {
			m.nodes[u].dict = f
		} else {
			m.nodes[u].dict = m.nodes[f].dict
		}

		for b, v := range m.nodes[u].next {
			f := m.nodes[u].fail
			for {
				if t, ok := m.nodes[f].next[b]; ok && t != v {
					m.nodes[v].fail = t
					break
				}
				if f == 0 {
					m.nodes[v].fail = 0
					break
				}
				f = m.nodes[f].fail
			}
			queue = append(queue, v)
		}
	}
}

// step advances the automaton from state s on input byte b.
func (m *Matcher) step(s int32, b byte) int32 {
	for {
		if t, ok := m.nodes[s].next[b]; ok {
			return t
		}
		if s == 0 {
			return 0
		}
		s = m.nodes[s].fail
	}
}

// Find returns every occurrence of every pattern in data, in detection
// order: ascending end offset, and longest pattern first among
// occurrences sharing an end offset.
func (m *Matcher) Find(data []byte) []Match {
	var matches []Match

	s := int32(0)
	for i := 0; i < len(data); i++ {
		s = m.step(s, data[i])
		for t := s; t != 0; t = m.nodes[t].dict {
			p := m.nodes[t].out
			if p < 0 {
				continue
			}
			pattern := m.patterns[p]
			matches = append(matches, Match{
				Pattern: pattern,
				Start:   i + 1 - len(pattern),
				End:     i + 1,
			})
		}
	}

	return matches
}

// Unique returns the deduplicated set of patterns occurring in data,
// ordered by the start offset of each pattern's first occurrence, with
// ties broken by end offset. Scanning stops early once every pattern
// in the set has been seen.
func (m *Matcher) Unique(data []byte) []string {
	found := make(map[int32]bool, len(m.patterns))
	var firsts []Match

	s := int32(0)
	for i := 0; i < len(data) && len(found) < len(m.patterns); i++ {
		s = m.step(s, data[i])
		for t := s; t != 0; t = m.nodes[t].dict {
			p := m.nodes[t].out
			if p < 0 || found[p] {
				continue
			}
			found[p] = true
			pattern := m.patterns[p]
			firsts = append(firsts, Match{
				Pattern: pattern,
				Start:   i + 1 - len(pattern),
				End:     i + 1,
			})
		}
	}

	sort.Slice(firsts, func(a, b int) bool {
		if firsts[a].Start != firsts[b].Start {
			return firsts[a].Start < firsts[b].Start
		}
		return firsts[a].End < firsts[b].End
	})

	patterns := make([]string, len(firsts))
	for i, f := range firsts {
		patterns[i] = f.Pattern
	}
	return patterns
}
