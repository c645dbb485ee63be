package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCapture(dir string) *ScreenshotCapture {
	sc := NewScreenshotCapture(dir, "hero")
	sc.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 7e6, time.UTC) }
	return sc
}

func TestFilename(t *testing.T) {
	sc := fixedCapture("shots")
	assert.Equal(t, filepath.Join("shots", "hero_2026-02-03_04-05-06.007.png"), sc.Filename(""))
	assert.Equal(t, filepath.Join("shots", "hero_2026-02-03_04-05-06.007_warping.png"), sc.Filename("warping"))

	sc.SetOutputDir("")
	assert.Equal(t, "hero_2026-02-03_04-05-06.007.png", sc.Filename(""))
}

func TestFlipRows(t *testing.T) {
	// Two rows, bottom row red, top row blue, as OpenGL returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRows(pixels, 1, 2)
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[4:8])
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := fixedCapture(dir)

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	path, err := sc.CaptureFromPixels(pixels, 4, 3, "idle")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hero_2026-02-03_04-05-06.007_idle.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestCaptureFromPixelsErrors(t *testing.T) {
	sc := fixedCapture(t.TempDir())

	_, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2, "")
	assert.Error(t, err)

	_, err = sc.CaptureFromPixels(nil, 0, 0, "")
	assert.Error(t, err)
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewFPSCounter(start, time.Second)

	for i := 1; i < 60; i++ {
		_, ok := c.Tick(start.Add(time.Duration(i) * time.Second / 60))
		assert.False(t, ok)
	}

	fps, ok := c.Tick(start.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 60, fps, 1e-9)

	_, ok = c.Tick(start.Add(time.Second + time.Millisecond))
	assert.False(t, ok, "new window started")
}
