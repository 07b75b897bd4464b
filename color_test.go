package uvpaint

import (
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGBA
		wantOK bool
	}{
		{
			name:   "valid lowercase",
			input:  "#ff69b4",
			want:   RGBA{R: 1, G: 105.0 / 255, B: 180.0 / 255, A: 1},
			wantOK: true,
		},
		{
			name:   "valid uppercase",
			input:  "#FF69B4",
			want:   RGBA{R: 1, G: 105.0 / 255, B: 180.0 / 255, A: 1},
			wantOK: true,
		},
		{
			name:   "missing hash",
			input:  "ff69b4",
			want:   Black,
			wantOK: false,
		},
		{
			name:   "short form rejected",
			input:  "#f6b",
			want:   Black,
			wantOK: false,
		},
		{
			name:   "non-hex characters",
			input:  "#zzxxyy",
			want:   Black,
			wantOK: false,
		},
		{
			name:   "corrupted fractional string",
			input:  "#ff69.b",
			want:   Black,
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			want:   Black,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Hex(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Hex(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexString_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff69b4", "#1f3d7a", "#a93226"} {
		c, ok := Hex(hex)
		if !ok {
			t.Fatalf("Hex(%q) unexpectedly failed", hex)
		}
		if got := c.HexString(); got != hex {
			t.Errorf("HexString() = %q, want %q", got, hex)
		}
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delta float64
		want  string
	}{
		{
			name:  "lighten",
			input: "#101010",
			delta: 16,
			want:  "#202020",
		},
		{
			name:  "darken",
			input: "#202020",
			delta: -16,
			want:  "#101010",
		},
		{
			name:  "clamps at white",
			input: "#f0f0f0",
			delta: 100,
			want:  "#ffffff",
		},
		{
			name:  "clamps at black",
			input: "#101010",
			delta: -100,
			want:  "#000000",
		},
		{
			name:  "malformed input falls back",
			input: "not-a-color",
			delta: 10,
			want:  "#0a0a0a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustBrightness(tt.input, tt.delta); got != tt.want {
				t.Errorf("AdjustBrightness(%q, %v) = %q, want %q", tt.input, tt.delta, got, tt.want)
			}
		})
	}
}

// Fractional deltas must round, never encode a fractional channel: the
// historical failure mode produced strings like "#ff69.b5d20".
func TestAdjustBrightness_FractionalDeltaRounds(t *testing.T) {
	got := AdjustBrightness("#ff69b4", 0.4)
	if strings.Contains(got, ".") {
		t.Fatalf("AdjustBrightness produced fractional hex: %q", got)
	}
	if len(got) != 7 {
		t.Fatalf("AdjustBrightness produced %d-char string: %q", len(got), got)
	}
}

func TestAdjustBrightness_Idempotence(t *testing.T) {
	for _, hex := range []string{"#ff69b4", "#336699", "#808080"} {
		got := AdjustBrightness(AdjustBrightness(hex, 10), -10)
		if strings.Contains(got, ".") {
			t.Fatalf("round trip produced fractional hex: %q", got)
		}
		// Integer rounding allows each channel to drift by at most 1.
		want, _ := Hex(hex)
		back, ok := Hex(got)
		if !ok {
			t.Fatalf("round trip produced unparseable hex: %q", got)
		}
		for name, pair := range map[string][2]float64{
			"R": {want.R, back.R},
			"G": {want.G, back.G},
			"B": {want.B, back.B},
		} {
			if diff := (pair[0] - pair[1]) * 255; diff > 1 || diff < -1 {
				t.Errorf("channel %s drifted by %v in round trip of %q", name, diff, hex)
			}
		}
	}
}

func TestHexOrFallback(t *testing.T) {
	if got := HexOrFallback("#ffffff"); !colorsClose(got, White) {
		t.Errorf("HexOrFallback valid input = %+v, want white", got)
	}
	if got := HexOrFallback("#junk!!"); !colorsClose(got, Black) {
		t.Errorf("HexOrFallback malformed input = %+v, want fallback black", got)
	}
}

func TestLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 1, 1)
	mid := a.Lerp(b, 0.5)
	if !colorsClose(mid, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
}

// colorsClose compares colors with a small tolerance.
func colorsClose(a, b RGBA) bool {
	const eps = 1e-9
	close := func(x, y float64) bool {
		d := x - y
		return d < eps && d > -eps
	}
	return close(a.R, b.R) && close(a.G, b.G) && close(a.B, b.B) && close(a.A, b.A)
}
