package chart

import (
	"image/color"
)

func palette(
	brush int,
) color.RGBA {

	col := make([]color.RGBA, 8)
	col[0] = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	col[1] = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	col[2] = color.RGBA{R: 31, G: 211, B: 172, A: 255}
	col[3] = color.RGBA{R: 255, G: 122, B: 180, A: 255}
	col[4] = color.RGBA{R: 122, G: 156, B: 255, A: 255}
	col[5] = color.RGBA{R: 255, G: 182, B: 110, A: 255}
	col[6] = color.RGBA{R: 27, G: 170, B: 139, A: 255}
	col[7] = color.RGBA{R: 99, G: 124, B: 198, A: 255}

	return col[brush%len(col)]
}
