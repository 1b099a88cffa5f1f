package searcher

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewOutput(t *testing.T) {
	tests := []struct {
		name     string
		colorize bool
	}{
		{
			name:     "with colors",
			colorize: true,
		},
		{
			name:     "without colors",
			colorize: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			output := NewOutput(stdout, stderr, tt.colorize)
			colorFuncs := []struct {
				name string
				fn   func(string) string
			}{
				{"cyan", output.cyan},
				{"green", output.green},
				{"white", output.white},
				{"yellow", output.yellow},
				{"red", output.red},
			}
			for _, cf := range colorFuncs {
				if cf.fn == nil {
					t.Errorf("NewOutput() %s color func is nil", cf.name)
					continue
				}
				s := cf.fn("test")
				if tt.colorize {
					if s == "test" {
						t.Errorf("NewOutput() expected %s color func to return ANSI codes", cf.name)
					}
				} else {
					if s != "test" {
						t.Errorf("NewOutput() expected %s color func to return plain string, got %q", cf.name, s)
					}
				}
			}
		})
	}
}

func TestOutputReport(t *testing.T) {
	results := &Results{
		Matched: []MatchedFile{
			{Path: "/src/a.txt", Patterns: []string{"foo", "bar"}},
			{Path: "/src/b.txt", Patterns: []string{"foo"}},
		},
		Skipped: []SkippedFile{
			{Path: "/src/c.bin", Reason: SkipSize},
		},
		Unmatched: []string{"/src/d.txt"},
	}

	t.Run("all sections", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		output := NewOutput(stdout, &bytes.Buffer{}, false)
		output.Report(results, true, true)
		got := stdout.String()

		for _, want := range []string{
			`SKIPPED(size-exceeded) - /src/c.bin`,
			`DIDN'T MATCH - /src/d.txt`,
			`["foo" "bar"] | MATCHED IN > /src/a.txt`,
			`Matched 2 files, 1 unmatched candidates, 1 files skipped.`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("Report() output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("pattern column is padded", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		output := NewOutput(stdout, &bytes.Buffer{}, false)
		output.Report(results, false, false)
		got := stdout.String()

		// The single-pattern line pads out to the two-pattern width
		// (13 columns), and the format separator adds one more space.
		want := `["foo"]       | MATCHED IN > /src/b.txt`
		if !strings.Contains(got, want) {
			t.Errorf("Report() output missing padded line %q:\n%s", want, got)
		}

		// Both matched lines align their separators into one column.
		var cols []int
		for _, line := range strings.Split(got, "\n") {
			if strings.Contains(line, "MATCHED IN >") {
				cols = append(cols, strings.Index(line, "|"))
			}
		}
		if len(cols) != 2 || cols[0] != cols[1] {
			t.Errorf("Report() separator columns %v not aligned:\n%s", cols, got)
		}
	})

	t.Run("sections are optional", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		output := NewOutput(stdout, &bytes.Buffer{}, false)
		output.Report(results, false, false)
		got := stdout.String()

		if strings.Contains(got, "SKIPPED") {
			t.Errorf("Report() printed skipped section without showSkipped:\n%s", got)
		}
		if strings.Contains(got, "DIDN'T MATCH") {
			t.Errorf("Report() printed unmatched section without showUnmatched:\n%s", got)
		}
	})
}

func TestOutputProgress(t *testing.T) {
	stderr := &bytes.Buffer{}
	output := NewOutput(&bytes.Buffer{}, stderr, false)

	output.ScanProgress(1, 2, "/src/some-long-file-name.txt")
	output.ScanProgress(2, 2, "/src/b.txt")
	output.EndProgress()

	got := stderr.String()

	lines := strings.Split(got, "\r")
	if len(lines) != 3 {
		t.Fatalf("expected 2 carriage-return separated progress lines, got %q", got)
	}

	// The shorter second message is padded over the first one's residue.
	if len(strings.TrimRight(lines[1], "\n")) < len(lines[0]) {
		t.Errorf("second progress line %q shorter than first %q; residue would remain", lines[1], lines[0])
	}

	if !strings.Contains(lines[0], "some-long-file-name.txt") {
		t.Errorf("progress line %q missing base name", lines[0])
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("EndProgress() should terminate the line, got %q", got)
	}
}

func TestOutputBanner(t *testing.T) {
	stdout := &bytes.Buffer{}
	output := NewOutput(stdout, &bytes.Buffer{}, false)

	output.Banner(&Options{
		Root:        "/src",
		Patterns:    []string{"foo", "bar"},
		MaxFileSize: 1024,
		MaxQueued:   10,
	})
	got := stdout.String()

	for _, want := range []string{
		`Search Patterns: ["foo" "bar"]`,
		`Target Dir: /src`,
		`Max File Size: 1024`,
		`Max Queued Files: 10`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Banner() output missing %q:\n%s", want, got)
		}
	}
}
