package cmd

import (
	"reflect"
	"testing"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:    "auto",
			value:   "auto",
			wantErr: false,
			want:    colorAuto,
		},
		{
			name:    "always",
			value:   "always",
			wantErr: false,
			want:    colorAlways,
		},
		{
			name:    "never",
			value:   "never",
			wantErr: false,
			want:    colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}

			// Test String() method
			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}

			// Test Type() method
			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "plain bytes",
			input: "1024",
			want:  1024,
		},
		{
			name:  "kilobytes",
			input: "500k",
			want:  500 * 1024,
		},
		{
			name:  "megabytes uppercase",
			input: "5M",
			want:  5 * 1024 * 1024,
		},
		{
			name:  "fractional gigabytes",
			input: "1.5G",
			want:  int64(1.5 * 1024 * 1024 * 1024),
		},
		{
			name:  "full unit name",
			input: "2MB",
			want:  2 * 1024 * 1024,
		},
		{
			name:  "binary unit name",
			input: "2MiB",
			want:  2 * 1024 * 1024,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unknown unit",
			input:   "10x",
			wantErr: true,
		},
		{
			name:    "no number",
			input:   "MB",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseByteSize(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseByteSize(%q) expected error, got %d", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Errorf("parseByteSize(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("parseByteSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitExtensions(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "empty",
			values: []string{},
			want:   nil,
		},
		{
			name:   "single extension",
			values: []string{".go"},
			want:   []string{".go"},
		},
		{
			name:   "repeated flag values",
			values: []string{".c", ".h"},
			want:   []string{".c", ".h"},
		},
		{
			name:   "colon separated value",
			values: []string{".cpp:.hpp"},
			want:   []string{".cpp", ".hpp"},
		},
		{
			name:   "mixed separators",
			values: []string{".cpp:.hpp", ".cc"},
			want:   []string{".cpp", ".hpp", ".cc"},
		},
		{
			name:   "missing dot is added",
			values: []string{"go:md"},
			want:   []string{".go", ".md"},
		},
		{
			name:   "blank segments dropped",
			values: []string{":.go:"},
			want:   []string{".go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitExtensions(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitExtensions(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
