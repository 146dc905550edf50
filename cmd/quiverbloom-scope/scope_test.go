package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-quiverbloom"
)

func TestQuantizer_Sample(t *testing.T) {
	q := newQuantizer(quiverbloom.AlgorithmWisp.Canvas(), bitsPerSample16)

	tests := []struct {
		name string
		x, y float64
		l, r int
	}{
		{"top left", 0, 0, -32767, 32767},
		{"bottom right", 400, 400, 32767, -32767},
		{"center", 200, 200, 0, 0},
		{"clamped", -1000, 5000, -32767, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r, ok := q.sample(tt.x, tt.y)
			require.True(t, ok)
			assert.Equal(t, tt.l, l)
			assert.Equal(t, tt.r, r)
		})
	}
}

func TestQuantizer_SkipsNonFinite(t *testing.T) {
	q := newQuantizer(quiverbloom.AlgorithmWisp.Canvas(), bitsPerSample24)

	_, _, ok := q.sample(math.Inf(1), 10)
	assert.False(t, ok)

	got := q.appendFrame(nil, []float64{0, math.Inf(1), 400}, []float64{0, 0, 400})
	assert.Equal(t, []int{-8388607, 8388607, 8388607, -8388607}, got)
}

func TestScopeConfig_Validate(t *testing.T) {
	valid := scopeConfig{
		Algorithm: quiverbloom.AlgorithmWisp, SampleRate: 48000, BitDepth: 16, Frames: 1, Steps: 10,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*scopeConfig)
	}{
		{"zero rate", func(c *scopeConfig) { c.SampleRate = 0 }},
		{"8-bit", func(c *scopeConfig) { c.BitDepth = 8 }},
		{"zero frames", func(c *scopeConfig) { c.Frames = 0 }},
		{"zero steps", func(c *scopeConfig) { c.Steps = 0 }},
		{"negative points", func(c *scopeConfig) { c.Points = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), quiverbloom.ErrInvalidConfig)
		})
	}

	bad := valid
	bad.Algorithm = 0
	assert.ErrorIs(t, bad.Validate(), quiverbloom.ErrUnknownAlgorithm)
}

func TestScopeConfig_FrameTimes(t *testing.T) {
	c := scopeConfig{Frames: 5, Steps: 2}
	assert.Equal(t, []float64{0, 0.5, 0, 0.5, 0}, c.frameTimes())
}

func TestScopeConfig_PointsPerFrame(t *testing.T) {
	c := scopeConfig{Algorithm: quiverbloom.AlgorithmMedusa}
	assert.Equal(t, 40000, c.pointsPerFrame())
	c.Points = 12
	assert.Equal(t, 12, c.pointsPerFrame())
}

// decode reads a WAV file back with the go-audio decoder.
func decode(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	d := wav.NewDecoder(file)
	require.True(t, d.IsValidFile())
	buf, err := d.FullPCMBuffer()
	require.NoError(t, err)
	return d, buf.Data
}

// TestWriteScope_RoundTrip writes algorithm 6, which drops its singular
// point 50 from every frame.
func TestWriteScope_RoundTrip(t *testing.T) {
	for _, bits := range []int{bitsPerSample16, bitsPerSample24} {
		path := filepath.Join(t.TempDir(), "scope.wav")
		cfg := scopeConfig{
			Algorithm:  quiverbloom.AlgorithmShell,
			SampleRate: 8000,
			BitDepth:   bits,
			Frames:     3,
			Steps:      quiverbloom.DefaultLoopSteps,
			Points:     60,
		}

		written, err := writeScopeFile(path, cfg)
		require.NoError(t, err)
		assert.Equal(t, 3*59, written)

		d, data := decode(t, path)
		assert.Equal(t, uint16(2), d.NumChans)
		assert.Equal(t, uint32(8000), d.SampleRate)
		assert.Equal(t, uint16(bits), d.BitDepth)
		require.Len(t, data, 2*written)

		xs := make([]float64, 60)
		ys := make([]float64, 60)
		quiverbloom.GenerateFrame(quiverbloom.AlgorithmShell, 0, xs, ys)
		want := newQuantizer(cfg.Algorithm.Canvas(), bits).appendFrame(nil, xs, ys)
		assert.Equal(t, want, data[:len(want)], "%d-bit first frame", bits)
	}
}

// TestWriteScope_ManyBatches crosses the batch boundary and checks that
// frames stay in order.
func TestWriteScope_ManyBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scope.wav")
	cfg := scopeConfig{
		Algorithm:  quiverbloom.AlgorithmWisp,
		SampleRate: 8000,
		BitDepth:   bitsPerSample16,
		Frames:     framesPerBatch + 5,
		Steps:      10,
		Points:     8,
	}

	written, err := writeScopeFile(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Frames*8, written)

	_, data := decode(t, path)
	q := newQuantizer(cfg.Algorithm.Canvas(), cfg.BitDepth)
	times := cfg.frameTimes()
	for _, k := range []int{0, framesPerBatch - 1, framesPerBatch, cfg.Frames - 1} {
		xs := make([]float64, 8)
		ys := make([]float64, 8)
		quiverbloom.GenerateFrame(cfg.Algorithm, times[k], xs, ys)
		want := q.appendFrame(nil, xs, ys)
		assert.Equal(t, want, data[k*16:(k+1)*16], "frame %d", k)
	}
}

func TestWriteScopeFile_Errors(t *testing.T) {
	cfg := scopeConfig{
		Algorithm: quiverbloom.AlgorithmWisp, SampleRate: 8000, BitDepth: 16, Frames: 1, Steps: 1,
	}
	_, err := writeScopeFile("/nonexistent/dir/out.wav", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")

	cfg.BitDepth = 12
	_, err = writeScopeFile(filepath.Join(t.TempDir(), "out.wav"), cfg)
	require.ErrorIs(t, err, quiverbloom.ErrInvalidConfig)
}
