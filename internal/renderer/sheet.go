package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/linuxmatters/templeforge/internal/config"
)

// Tile is one labelled texture on a contact sheet.
type Tile struct {
	Label string
	Image image.Image
}

var labelColor = color.RGBA{R: 0xEE, G: 0xDD, B: 0xBB, A: 0xFF}

// ContactSheet lays tiles out in a grid of cols columns, each scaled into a
// square cell with its label centred underneath.
func ContactSheet(tiles []Tile, cols int) (*image.RGBA, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("no textures to lay out")
	}
	if cols <= 0 {
		cols = config.SheetColumns
	}
	if cols > len(tiles) {
		cols = len(tiles)
	}
	rows := (len(tiles) + cols - 1) / cols

	cellW := config.SheetCellSize + config.SheetMargin
	cellH := config.SheetCellSize + config.SheetLabelPad + config.SheetMargin
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cellW+config.SheetMargin, rows*cellH+config.SheetMargin))

	bg := image.NewUniform(color.Gray{Y: config.SheetBackground})
	draw.Draw(sheet, sheet.Bounds(), bg, image.Point{}, draw.Src)

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	for i, tile := range tiles {
		x := config.SheetMargin + (i%cols)*cellW
		y := config.SheetMargin + (i/cols)*cellH

		cell := image.Rect(x, y, x+config.SheetCellSize, y+config.SheetCellSize)
		draw.NearestNeighbor.Scale(sheet, fitRect(tile.Image.Bounds(), cell), tile.Image, tile.Image.Bounds(), draw.Src, nil)

		drawLabel(sheet, face, tile.Label, x, y+config.SheetCellSize+config.SheetLabelSize+4)
	}

	return sheet, nil
}

// fitRect returns the largest rectangle with src's aspect ratio centred in cell.
func fitRect(src, cell image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	cw, ch := cell.Dx(), cell.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{Min: cell.Min, Max: cell.Min}
	}

	w, h := cw, sh*cw/sw
	if h > ch {
		w, h = sw*ch/sh, ch
	}
	x := cell.Min.X + (cw-w)/2
	y := cell.Min.Y + (ch-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// labelFace loads the Go Regular font at the label size.
func labelFace() (font.Face, error) {
	parsedFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    config.SheetLabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// measureText returns the width and actual bounds of rendered text
func measureText(face font.Face, text string) (int, fixed.Rectangle26_6) {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	return width, bounds
}

// fitLabel trims text from the front, a rune at a time, until it fits in
// maxWidth, and marks the cut with an ellipsis. It returns the label and its width.
func fitLabel(face font.Face, text string, maxWidth int) (string, int) {
	width, _ := measureText(face, text)
	if width <= maxWidth {
		return text, width
	}
	for width > maxWidth && utf8.RuneCountInString(text) > 1 {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		width, _ = measureText(face, "…"+text)
	}
	return "…" + text, width
}

// drawLabel centres text under a cell starting at cellX, on the given baseline.
func drawLabel(img *image.RGBA, face font.Face, text string, cellX, baselineY int) {
	text, width := fitLabel(face, text, config.SheetCellSize)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  freetype.Pt(cellX+(config.SheetCellSize-width)/2, baselineY),
	}
	d.DrawString(text)
}

// SaveContactSheet writes img to path as PNG.
func SaveContactSheet(path string, img image.Image) error {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(outFile, img); err != nil {
		outFile.Close()
		return fmt.Errorf("encoding contact sheet: %w", err)
	}
	return outFile.Close()
}
