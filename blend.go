package uvpaint

// BlendMode selects how a source color combines with the destination when
// compositing layers. Modes follow the W3C compositing-and-blending
// separable blend functions, composited with source-over alpha.
type BlendMode uint8

const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination colors.
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again (brightening).
	BlendScreen
	// BlendOverlay multiplies or screens depending on destination lightness.
	BlendOverlay
	// BlendDarken keeps the darker of source and destination per channel.
	BlendDarken
	// BlendLighten keeps the lighter of source and destination per channel.
	BlendLighten
)

// String returns the lowercase name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	default:
		return "normal"
	}
}

// ParseBlendMode maps a mode name to a BlendMode. Unknown names map to
// BlendNormal.
func ParseBlendMode(name string) BlendMode {
	switch name {
	case "multiply":
		return BlendMultiply
	case "screen":
		return BlendScreen
	case "overlay":
		return BlendOverlay
	case "darken":
		return BlendDarken
	case "lighten":
		return BlendLighten
	default:
		return BlendNormal
	}
}

// BlendColors composites src over dst using the given blend mode.
// Both colors are non-premultiplied; the result is non-premultiplied.
func BlendColors(src, dst RGBA, mode BlendMode) RGBA {
	// Mix the blended color with the raw source proportionally to the
	// destination alpha, per the W3C compositing model.
	if mode != BlendNormal {
		src = RGBA{
			R: (1-dst.A)*src.R + dst.A*blendChannel(mode, src.R, dst.R),
			G: (1-dst.A)*src.G + dst.A*blendChannel(mode, src.G, dst.G),
			B: (1-dst.A)*src.B + dst.A*blendChannel(mode, src.B, dst.B),
			A: src.A,
		}
	}
	return sourceOver(src, dst)
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst RGBA) RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{}
	}

	return RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// blendChannel applies a separable blend function to one channel pair.
func blendChannel(mode BlendMode, s, d float64) float64 {
	switch mode {
	case BlendMultiply:
		return s * d
	case BlendScreen:
		return s + d - s*d
	case BlendOverlay:
		if d <= 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	case BlendDarken:
		if s < d {
			return s
		}
		return d
	case BlendLighten:
		if s > d {
			return s
		}
		return d
	default:
		return s
	}
}
