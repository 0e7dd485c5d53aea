package normalize

import (
	"reflect"
	"testing"
)

func TestFold_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "ascii identity", in: "hello world", out: "hello world"},
		{name: "ascii upper", in: "DoN'T Be A bUtT", out: "don't be a butt"},
		{name: "latin accents", in: "VEHÍCULO", out: "veh\u00edculo"},
		{name: "greek", in: "ΑΒΓ", out: "αβγ"},
		{name: "width change kept", in: "\u212a", out: "\u212a"}, // KELVIN SIGN lowers to 1-byte k
		{name: "invalid bytes kept", in: string([]byte{'A', 0xff, 'B'}), out: string([]byte{'a', 0xff, 'b'})},
		{name: "emoji", in: "💩BUTT💩", out: "💩butt💩"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fold(tc.in)
			if got != tc.out {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if len(got) != len(tc.in) {
				t.Fatalf("Fold changed byte length: %d -> %d", len(tc.in), len(got))
			}
		})
	}
}

func TestForms(t *testing.T) {
	got := Forms("cabr\u00f3n")
	if len(got) != 2 {
		t.Fatalf("Forms(cabrón) = %q, want composed and decomposed", got)
	}
	if got[0] != "cabr\u00f3n" || got[1] != "cabro\u0301n" {
		t.Fatalf("unexpected forms %q", got)
	}
	if got := Forms("butt"); !reflect.DeepEqual(got, []string{"butt"}) {
		t.Fatalf("ascii phrase forms = %q", got)
	}
	if got := Forms("cabro\u0301n"); len(got) != 2 || got[1] != "cabr\u00f3n" {
		t.Fatalf("decomposed input forms = %q", got)
	}
}

func TestCode(t *testing.T) {
	for in, want := range map[string]string{" EN ": "en", "De": "de", "  ": "", "": ""} {
		if got := Code(in); got != want {
			t.Fatalf("Code(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity", in: "I like big butts", out: "I like big butts"},
		{name: "zero widths dropped", in: "bu\u200btt\u200d", out: "butt"},
		{name: "controls dropped", in: "a\x00b\x07c\n", out: "abc\n"},
		{name: "nfc composed", in: "vehi\u0301culo", out: "veh\u00edculo"},
		{name: "invalid utf8 dropped", in: string([]byte{0xff, 'o', 'k'}), out: "ok"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.out {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"plain text", "plain text"},
		{"tab\tnew\nline\r", "tab\tnew\nline\r"},
		{"del\x7f", "del"},
		{"c1\u0085x", "c1x"},
		{string([]byte{'a', 0xc3}), "a"},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.out {
			t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
