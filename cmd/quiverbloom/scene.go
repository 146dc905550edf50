package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/raster"
)

// Scene describes a render job. It can be loaded from YAML with -config;
// flags given explicitly on the command line override the file.
//
//	algorithm: spiral
//	steps: 240
//	scale: 2
//	alpha: 0.2
//	background: "#000000"
//	foreground: "#ffffff"
type Scene struct {
	Algorithm  string  `yaml:"algorithm"`
	Steps      int     `yaml:"steps"`
	Points     int     `yaml:"points,omitempty"`
	Workers    int     `yaml:"workers,omitempty"`
	Scale      float64 `yaml:"scale"`
	Radius     float64 `yaml:"radius"`
	Alpha      float64 `yaml:"alpha"`
	FullDisc   bool    `yaml:"full_disc,omitempty"`
	Background string  `yaml:"background"`
	Foreground string  `yaml:"foreground"`
	Delay      int     `yaml:"delay"`
}

// defaultScene matches the browser host.
func defaultScene() Scene {
	o := raster.DefaultOptions()
	return Scene{
		Algorithm:  defaultAlgorithm,
		Steps:      quiverbloom.DefaultLoopSteps,
		Scale:      o.Scale,
		Radius:     o.Radius,
		Alpha:      o.Alpha,
		Background: hexColor(o.Background),
		Foreground: hexColor(o.Foreground),
		Delay:      defaultGIFDelay,
	}
}

// loadScene reads a YAML scene on top of the defaults. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func loadScene(path string) (Scene, error) {
	s := defaultScene()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read scene: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scene and reports the first problem found.
func (s *Scene) Validate() error {
	if _, err := quiverbloom.ParseAlgorithm(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", quiverbloom.ErrInvalidConfig, err)
	}
	if s.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", quiverbloom.ErrInvalidConfig, s.Steps)
	}
	if s.Points < 0 {
		return fmt.Errorf("%w: points must not be negative, got %d", quiverbloom.ErrInvalidConfig, s.Points)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", quiverbloom.ErrInvalidConfig, s.Workers)
	}
	if s.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %d", quiverbloom.ErrInvalidConfig, s.Delay)
	}

	opts, err := s.rasterOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", quiverbloom.ErrInvalidConfig, err)
	}
	return nil
}

// rasterOptions converts the drawing fields.
func (s *Scene) rasterOptions() (raster.Options, error) {
	bg, err := parseHexColor(s.Background)
	if err != nil {
		return raster.Options{}, fmt.Errorf("%w: background: %w", quiverbloom.ErrInvalidConfig, err)
	}
	fg, err := parseHexColor(s.Foreground)
	if err != nil {
		return raster.Options{}, fmt.Errorf("%w: foreground: %w", quiverbloom.ErrInvalidConfig, err)
	}

	return raster.Options{
		Scale:      s.Scale,
		Radius:     s.Radius,
		Alpha:      s.Alpha,
		Background: bg,
		Foreground: fg,
		HalfDisc:   !s.FullDisc,
	}, nil
}

// parseHexColor parses "#rrggbb" into an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != hexColorLen || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String summarizes the scene for verbose logs.
func (s Scene) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "algorithm=%s steps=%d scale=%g radius=%g alpha=%g",
		s.Algorithm, s.Steps, s.Scale, s.Radius, s.Alpha)
	if s.Points > 0 {
		fmt.Fprintf(&b, " points=%d", s.Points)
	}
	if s.FullDisc {
		b.WriteString(" full-disc")
	}
	return b.String()
}
