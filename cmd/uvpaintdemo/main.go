// Command uvpaintdemo paints a sample of every registered stitch style onto
// a canvas and writes the composed raster as a PNG. It doubles as a visual
// smoke test for the rendering strategies.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gostitch/uvpaint"
	"github.com/gostitch/uvpaint/capture"
	"github.com/gostitch/uvpaint/painter"
)

func main() {
	var (
		size   = flag.Int("size", 1024, "canvas resolution")
		output = flag.String("output", "stitches.png", "output file")
		config = flag.String("config", "", "optional YAML config file")
	)
	flag.Parse()

	cfg := painter.DefaultConfig()
	if *config != "" {
		loaded, err := painter.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Resolution = *size

	s := painter.NewSession(cfg)

	styles := []uvpaint.RenderConfig{
		{Type: "satin", Color: "#1f3d7a", Thickness: 6},
		{Type: "cross-stitch", Color: "#a93226", Thickness: 7},
		{Type: "chain", Color: "#1e8449", Thickness: 6},
		{Type: "french-knot", Color: "#b7950b", Thickness: 6},
		{Type: "running", Color: "#21618c", Thickness: 6},
		{Type: "variegated", Color: "#c0392b", SecondaryColor: "#2980b9", Thickness: 6},
		{Type: "back-stitch", Color: "#6c3483", Thickness: 6},
		{Type: "stem", Color: "#117864", Thickness: 6},
		{Type: "brush", Color: "#2c3e50", Thickness: 10},
	}

	for i, style := range styles {
		s.SetTool(style)
		paintWave(s, float64(i+1)/float64(len(styles)+1))
	}

	// A filled region behind everything else.
	s.SetTool(uvpaint.RenderConfig{Type: "fill", Color: "#f7f1e3", Thickness: 1, Opacity: 0.9})
	paintDiamond(s)
	_ = s.Stack().SendToBack(s.Stack().GetOrCreateToolLayer("fill").ID)

	composed := s.Compose()
	if err := composed.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, composed.Width(), composed.Height())
}

// paintWave draws one sine-wave stroke across the canvas at the given
// vertical position (normalized).
func paintWave(s *painter.Session, v float64) {
	now := time.Now()
	first := true
	for i := 0; i <= 60; i++ {
		u := 0.05 + 0.9*float64(i)/60
		sample := capture.Sample{
			U:        u,
			V:        v + 0.03*math.Sin(u*4*math.Pi),
			Pressure: 0.4 + 0.3*math.Sin(u*2*math.Pi),
			Time:     now.Add(time.Duration(i) * 8 * time.Millisecond),
		}
		if first {
			s.PointerDown(sample)
			first = false
			continue
		}
		if err := s.PointerMove(sample); err != nil {
			log.Fatalf("Stroke aborted: %v", err)
		}
	}
	if err := s.PointerUp(); err != nil {
		log.Fatalf("Commit failed: %v", err)
	}
}

// paintDiamond draws a closed diamond gesture for the fill tool.
func paintDiamond(s *painter.Session) {
	now := time.Now()
	corners := [][2]float64{{0.5, 0.1}, {0.9, 0.5}, {0.5, 0.9}, {0.1, 0.5}, {0.5, 0.1}}
	s.PointerDown(capture.Sample{U: corners[0][0], V: corners[0][1], Time: now})
	for i, c := range corners[1:] {
		sample := capture.Sample{U: c[0], V: c[1], Time: now.Add(time.Duration(i+1) * 30 * time.Millisecond)}
		if err := s.PointerMove(sample); err != nil {
			log.Fatalf("Stroke aborted: %v", err)
		}
	}
	if err := s.PointerUp(); err != nil {
		log.Fatalf("Commit failed: %v", err)
	}
}
