package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/scoring"
)

var (
	coldColor  = colorful.Color{R: 0.16, G: 0.29, B: 0.62}
	hotColor   = colorful.Color{R: 0.93, G: 0.26, B: 0.14}
	emptyColor = colorful.Color{R: 0.12, G: 0.12, B: 0.12}
)

// HeatColor blends from cold to hot as score approaches top
func HeatColor(score, top int) colorful.Color {
	if top <= scoring.Baseline {
		return coldColor
	}
	t := float64(score-scoring.Baseline) / float64(top-scoring.Baseline)
	return coldColor.BlendLab(hotColor, t).Clamped()
}

// Heatmap paints every cell of b in its score color, cellPx pixels square
func Heatmap(b *board.Board, r scoring.Result, cellPx int) image.Image {
	if cellPx < 1 {
		cellPx = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	top := r.Max()
	for _, pos := range b.Positions() {
		c := emptyColor
		if s, ok := r.At(pos); ok {
			c = HeatColor(s, top)
		}
		small.Set(pos.Col-1, pos.Row-1, colorfulToColor(c))
	}
	if cellPx == 1 {
		return small
	}
	// Nearest neighbor keeps cell edges crisp
	return resize.Resize(uint(b.Width()*cellPx), uint(b.Height()*cellPx), small, resize.NearestNeighbor)
}

// EncodeHeatmap writes the heatmap of b as PNG
func EncodeHeatmap(w io.Writer, b *board.Board, r scoring.Result, cellPx int) error {
	return png.Encode(w, Heatmap(b, r, cellPx))
}

// WriteHeatmap writes the heatmap of b to a PNG file at path
func WriteHeatmap(path string, b *board.Board, r scoring.Result, cellPx int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating heatmap file: %v", err)
	}
	if err := EncodeHeatmap(f, b, r, cellPx); err != nil {
		f.Close()
		return fmt.Errorf("error encoding heatmap: %v", err)
	}
	return f.Close()
}
