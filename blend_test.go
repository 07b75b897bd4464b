package uvpaint

import "testing"

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		name string
		want BlendMode
	}{
		{"normal", BlendNormal},
		{"multiply", BlendMultiply},
		{"screen", BlendScreen},
		{"overlay", BlendOverlay},
		{"darken", BlendDarken},
		{"lighten", BlendLighten},
		{"nonsense", BlendNormal},
		{"", BlendNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBlendMode(tt.name); got != tt.want {
				t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBlendModeString_RoundTrip(t *testing.T) {
	for _, m := range []BlendMode{BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendDarken, BlendLighten} {
		if got := ParseBlendMode(m.String()); got != m {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestBlendColors_NormalOverOpaque(t *testing.T) {
	src := RGBA{R: 1, G: 0, B: 0, A: 0.5}
	dst := RGBA{R: 0, G: 0, B: 1, A: 1}
	got := BlendColors(src, dst, BlendNormal)

	want := RGBA{R: 0.5, G: 0, B: 0.5, A: 1}
	if !colorsClose(got, want) {
		t.Errorf("BlendColors = %+v, want %+v", got, want)
	}
}

func TestBlendColors_OverTransparentKeepsSource(t *testing.T) {
	src := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	got := BlendColors(src, Transparent, BlendNormal)
	if !colorsClose(got, src) {
		t.Errorf("BlendColors over transparent = %+v, want %+v", got, src)
	}
}

func TestBlendColors_Multiply(t *testing.T) {
	src := RGBA{R: 0.5, G: 1, B: 0.5, A: 1}
	dst := RGBA{R: 1, G: 0.5, B: 0.5, A: 1}
	got := BlendColors(src, dst, BlendMultiply)

	want := RGBA{R: 0.5, G: 0.5, B: 0.25, A: 1}
	if !colorsClose(got, want) {
		t.Errorf("multiply = %+v, want %+v", got, want)
	}
}

func TestBlendColors_DarkenLighten(t *testing.T) {
	src := RGBA{R: 0.2, G: 0.8, B: 0.5, A: 1}
	dst := RGBA{R: 0.6, G: 0.4, B: 0.5, A: 1}

	dark := BlendColors(src, dst, BlendDarken)
	if !colorsClose(dark, RGBA{R: 0.2, G: 0.4, B: 0.5, A: 1}) {
		t.Errorf("darken = %+v", dark)
	}

	light := BlendColors(src, dst, BlendLighten)
	if !colorsClose(light, RGBA{R: 0.6, G: 0.8, B: 0.5, A: 1}) {
		t.Errorf("lighten = %+v", light)
	}
}
