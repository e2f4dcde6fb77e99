package yamlutil_test

// Notes:
// - Encode error branch: goccy/go-yaml only fails on unencodable types
//   (channels, funcs) which never appear in the config structs.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdpress/internal/yamlutil"
)

type sample struct {
	Pandoc  string  `yaml:"pandoc"`
	Margins float64 `yaml:"margins"`
	Fancy   bool    `yaml:"fancy"`
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Input checks and decoding
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    sample
	}{
		{
			name: "valid document",
			data: []byte("pandoc: /opt/pandoc\nmargins: 1.2\nfancy: true"),
			dest: &sample{},
			want: sample{Pandoc: "/opt/pandoc", Margins: 1.2, Fancy: true},
		},
		{
			name: "partial document",
			data: []byte("fancy: true"),
			dest: &sample{Pandoc: "kept"},
			want: sample{Pandoc: "kept", Fancy: true},
		},
		{
			name:    "empty input",
			data:    nil,
			dest:    &sample{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    []byte("pandoc: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStrict() unexpected error: %v", err)
			}
			if got := *tt.dest.(*sample); got != tt.want {
				t.Errorf("DecodeStrict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict_UnknownKey - Unknown keys rejected
// ---------------------------------------------------------------------------

func TestDecodeStrict_UnknownKey(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.DecodeStrict([]byte("pandoc: pandoc\nmargin: 1"), &s); err == nil {
		t.Fatal("DecodeStrict() expected error for unknown key, got nil")
	}

	if err := yamlutil.DecodeStrict([]byte("pandoc: pandoc"), &s); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}
	if s.Pandoc != "pandoc" {
		t.Errorf("Pandoc = %q, want %q", s.Pandoc, "pandoc")
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict_TooLarge - Size limit
// ---------------------------------------------------------------------------

func TestDecodeStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("pandoc: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.DecodeStrict(data, &sample{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("DecodeStrict() error = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Round trip of a simple struct
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Encode(sample{Pandoc: "pandoc", Margins: 0.7})
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "margins: 0.7") {
		t.Errorf("Encode() = %q, want it to contain %q", out, "margins: 0.7")
	}
}
