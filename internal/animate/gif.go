// Package animate stitches rendered chart images into an animated GIF.
package animate

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultDelay is the frame delay in hundredths of a second.
const DefaultDelay = 100

var ErrNoFrames = errors.New("animate: no frames")

type frameResult struct {
	Index   int
	Palette *image.Paletted
}

// Write decodes the PNG files in pngFilenames, in order, and encodes them
// as the frames of one GIF on w. Frames are converted concurrently.
func Write(
	ctx context.Context,
	w io.Writer,
	pngFilenames []string,
	delay int,
) error {

	if len(pngFilenames) == 0 {
		return ErrNoFrames
	}

	pal := generatePalette()

	resultCh := make(chan frameResult, len(pngFilenames))
	g, ctx := errgroup.WithContext(ctx)

	for index, fname := range pngFilenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return convertToPaletted(index, fname, pal, resultCh)
		})
	}

	err := g.Wait()
	close(resultCh)
	if err != nil {
		return err
	}

	var frameResults []frameResult
	for result := range resultCh {
		frameResults = append(frameResults, result)
	}

	sort.Slice(frameResults, func(i, j int) bool {
		return frameResults[i].Index < frameResults[j].Index
	})

	anim := &gif.GIF{}
	for _, result := range frameResults {
		anim.Image = append(anim.Image, result.Palette)
		anim.Delay = append(anim.Delay, delay)
	}

	return gif.EncodeAll(w, anim)
}

// WriteFile is Write to the file at path.
func WriteFile(
	ctx context.Context,
	path string,
	pngFilenames []string,
	delay int,
) error {

	outFile, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(ctx, outFile, pngFilenames, delay); err != nil {
		outFile.Close()
		os.Remove(path)
		return err
	}

	return outFile.Close()
}

func convertToPaletted(
	index int,
	fname string,
	pal []color.Color,
	resultCh chan<- frameResult,
) error {

	img, err := openPNG(fname)
	if err != nil {
		return err
	}

	palettedImage := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(palettedImage, img.Bounds(), img, image.Point{}, draw.Over)

	resultCh <- frameResult{
		Index:   index,
		Palette: palettedImage,
	}
	return nil
}

func generatePalette() []color.Color {
	pal := make([]color.Color, len(palette.Plan9))
	copy(pal, palette.Plan9)
	return pal
}

func openPNG(
	fname string,
) (
	image.Image, error,
) {

	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("animate: open frame: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("animate: decode %s: %w", fname, err)
	}
	return img, nil
}
