package raster

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/linuxmatters/templeforge/internal/config"
)

// Header is the 14-byte file header and 40-byte info header, packed little-endian.
type Header struct {
	Magic           [2]byte
	FileSize        uint32
	Reserved1       uint16
	Reserved2       uint16
	DataOffset      uint32
	InfoSize        uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// ImageSize returns the pixel payload size for a width×height image.
// Rows are not padded.
func ImageSize(width, height int) int {
	return config.BytesPerPixel * width * height
}

// FileSize returns the total encoded size for a width×height image.
func FileSize(width, height int) int {
	return config.BMPHeaderSize + ImageSize(width, height)
}

// NewHeader builds the header for a width×height image.
func NewHeader(width, height int) Header {
	return Header{
		Magic:       [2]byte{'B', 'M'},
		FileSize:    uint32(FileSize(width, height)),
		DataOffset:  config.BMPHeaderSize,
		InfoSize:    config.BMPInfoSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    config.BitsPerPixel,
		Compression: 0,
		ImageSize:   uint32(ImageSize(width, height)),
	}
}

// ReadHeader decodes a header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("failed to read bitmap header: %w", err)
	}
	return h, nil
}

// Encode writes g as a 24-bit BMP. Pixels are stored blue-green-red with the
// origin row first and a positive height, so conventional readers see the
// image flipped vertically. Existing consumers depend on this layout.
func Encode(w io.Writer, g *Grid) error {
	if err := binary.Write(w, binary.LittleEndian, NewHeader(g.Width, g.Height)); err != nil {
		return fmt.Errorf("failed to write bitmap header: %w", err)
	}

	row := make([]byte, config.BytesPerPixel*g.Width)
	for y := 0; y < g.Height; y++ {
		line := g.Pix[y*g.Width : (y+1)*g.Width]
		for x, p := range line {
			row[3*x] = p.B
			row[3*x+1] = p.G
			row[3*x+2] = p.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write bitmap row %d: %w", y, err)
		}
	}

	return nil
}

// WriteFile encodes g to path, replacing any existing file, and returns the
// number of bytes written.
func WriteFile(path string, g *Grid) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)
	if err := Encode(bw, g); err != nil {
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush bitmap: %w", err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
