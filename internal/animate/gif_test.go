package animate

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFrame(
	t *testing.T,
	path string,
	c color.Color,
) {

	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}

	var frames []string
	for i, c := range colors {
		path := filepath.Join(dir, "plot_"+string(rune('a'+i))+".png")
		writeFrame(t, path, c)
		frames = append(frames, path)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, frames, 50))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 3)
	assert.Equal(t, []int{50, 50, 50}, anim.Delay)

	// Frames keep their order: red, green, blue.
	for i := range colors {
		r, g, b, _ := anim.Image[i].At(5, 5).RGBA()
		channels := []uint32{r, g, b}
		for j := range channels {
			if j != i {
				assert.Greater(t, channels[i], channels[j], "frame %d", i)
			}
		}
	}
}

func TestWriteNoFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, errors.Is(Write(context.Background(), &buf, nil, 10), ErrNoFrames))
}

func TestWriteFileMissingFrame(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "plot_1000.png")
	writeFrame(t, good, color.White)

	out := filepath.Join(dir, "plots.gif")
	err := WriteFile(context.Background(), out, []string{good, filepath.Join(dir, "plot_2000.png")}, 10)

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoFileExists(t, out)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	frame := filepath.Join(dir, "plot_1000.png")
	writeFrame(t, frame, color.Black)

	out := filepath.Join(dir, "plots.gif")
	require.NoError(t, WriteFile(context.Background(), out, []string{frame}, DefaultDelay))
	assert.FileExists(t, out)
}
