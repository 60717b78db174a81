package normalize

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
		ok    bool
	}{
		{name: "long hex", input: "#102030", want: RGBA{0x10, 0x20, 0x30, 255}, ok: true},
		{name: "short hex", input: "#fff", want: RGBA{255, 255, 255, 255}, ok: true},
		{name: "short hex alpha", input: "#0008", want: RGBA{0, 0, 0, 0x88}, ok: true},
		{name: "hex alpha", input: "#10203080", want: RGBA{0x10, 0x20, 0x30, 0x80}, ok: true},
		{name: "upper case", input: "  #ABCDEF ", want: RGBA{0xab, 0xcd, 0xef, 255}, ok: true},
		{name: "rgb", input: "rgb(1, 2, 3)", want: RGBA{1, 2, 3, 255}, ok: true},
		{name: "rgba", input: "rgba(1, 2, 3, 0)", want: RGBA{1, 2, 3, 0}, ok: true},
		{name: "named", input: "Navy", want: RGBA{0, 0, 128, 255}, ok: true},
		{name: "transparent", input: "transparent", want: RGBA{}, ok: true},
		{name: "bad digits", input: "#12345g", ok: false},
		{name: "bad length", input: "#12345", ok: false},
		{name: "out of range", input: "rgb(300, 0, 0)", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "word", input: "bluish", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseColor(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseColor(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	half := RGBA{0, 0, 0, 128}

	if got := FormatColor(RGBA{0x10, 0x20, 0x30, 255}, ProfileHex); got != "#102030" {
		t.Fatalf("hex: got %q", got)
	}
	if got := FormatColor(half, ProfileHex); got != "#00000080" {
		t.Fatalf("hex alpha: got %q", got)
	}
	if got := FormatColor(half, ProfileOpaque); got != "#7f7f7f" {
		t.Fatalf("opaque blend: got %q", got)
	}
	if got := FormatColor(RGBA{1, 2, 3, 0}, ProfileCSS); got != "rgba(1, 2, 3, 0)" {
		t.Fatalf("css: got %q", got)
	}
	if got := FormatColor(RGBA{255, 0, 0, 255}, ProfileCSS); got != "#ff0000" {
		t.Fatalf("css opaque: got %q", got)
	}
}

func TestIsTransparent(t *testing.T) {
	for _, input := range []string{"transparent", "#0000", "rgba(10, 10, 10, 0)"} {
		if !IsTransparent(input) {
			t.Fatalf("expected %q to be transparent", input)
		}
	}
	for _, input := range []string{"#000", "", "nope", "rgba(10, 10, 10, 0.5)"} {
		if IsTransparent(input) {
			t.Fatalf("expected %q not to be transparent", input)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  string
		ok    bool
	}{
		{"120", 120, UnitPx, true},
		{"120px", 120, UnitPx, true},
		{"50%", 50, UnitPercent, true},
		{"1.5em", 1.5, UnitEm, true},
		{"14 pt", 14, UnitPt, true},
		{"auto", 0, "", false},
		{"", 0, "", false},
		{"px", 0, "", false},
	}
	for _, tc := range tests {
		value, unit, ok := ParseLength(tc.input)
		if ok != tc.ok || value != tc.value || unit != tc.unit {
			t.Fatalf("ParseLength(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tc.input, value, unit, ok, tc.value, tc.unit, tc.ok)
		}
	}
}
