// Package verify reads generated assets back and checks them against the
// formats the game loader expects.
package verify

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/linuxmatters/templeforge/internal/audio"
	"github.com/linuxmatters/templeforge/internal/config"
	"github.com/linuxmatters/templeforge/internal/raster"
)

// ErrMalformed marks an asset that exists but does not match its format.
var ErrMalformed = errors.New("malformed asset")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// BitmapInfo describes a checked BMP file.
type BitmapInfo struct {
	Width  int
	Height int
	Size   int64
}

// Bitmap checks the header of a 24-bit BMP against its dimensions and the
// file length. Files whose rows happen to be 4-byte aligned are also run
// through a conventional decoder.
func Bitmap(path string) (BitmapInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return BitmapInfo{}, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return BitmapInfo{}, err
	}

	h, err := raster.ReadHeader(f)
	if err != nil {
		return BitmapInfo{}, malformed("%v", err)
	}

	info := BitmapInfo{Width: int(h.Width), Height: int(h.Height), Size: stat.Size()}
	if info.Width <= 0 || info.Height <= 0 {
		return info, malformed("dimensions %dx%d", info.Width, info.Height)
	}

	want := raster.NewHeader(info.Width, info.Height)
	switch {
	case h.Magic != want.Magic:
		return info, malformed("signature %q", h.Magic[:])
	case h.DataOffset != want.DataOffset || h.InfoSize != want.InfoSize:
		return info, malformed("offset %d and info size %d", h.DataOffset, h.InfoSize)
	case h.Planes != 1 || h.BitCount != config.BitsPerPixel || h.Compression != 0:
		return info, malformed("%d planes, %d bpp, compression %d", h.Planes, h.BitCount, h.Compression)
	case h.ImageSize != want.ImageSize:
		return info, malformed("image size field %d, want %d", h.ImageSize, want.ImageSize)
	case h.FileSize != want.FileSize:
		return info, malformed("file size field %d, want %d", h.FileSize, want.FileSize)
	case info.Size != int64(want.FileSize):
		return info, malformed("file is %d bytes, header says %d", info.Size, want.FileSize)
	}

	if (info.Width*config.BytesPerPixel)%4 == 0 {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return info, err
		}
		cfg, err := bmp.DecodeConfig(f)
		if err != nil {
			return info, malformed("decoder rejects file: %v", err)
		}
		if cfg.Width != info.Width || cfg.Height != info.Height {
			return info, malformed("decoder sees %dx%d", cfg.Width, cfg.Height)
		}
	}

	return info, nil
}

// WaveInfo describes a checked WAV file.
type WaveInfo struct {
	Samples  int
	Duration float64 // Seconds
	Peak     float64 // Normalised
	RMS      float64
	Dominant float64 // Hz, 0 when too short to analyse
}

// Wave checks a 16-bit mono PCM WAV file: header fields, chunk sizes,
// and that no sample exceeds the symmetric clamp.
func Wave(path string) (WaveInfo, error) {
	riffSize, err := readRIFFSize(path)
	if err != nil {
		return WaveInfo{}, err
	}

	pcm, err := audio.ReadPCM(path)
	if err != nil {
		return WaveInfo{}, malformed("%v", err)
	}

	n := len(pcm.Samples)
	info := WaveInfo{Samples: n, Duration: float64(n) / float64(config.SampleRate)}

	switch {
	case pcm.AudioFormat != 1:
		return info, malformed("audio format %d, want PCM", pcm.AudioFormat)
	case pcm.NumChannels != config.Channels:
		return info, malformed("%d channels", pcm.NumChannels)
	case pcm.BitDepth != config.BitDepth:
		return info, malformed("%d bits per sample", pcm.BitDepth)
	case pcm.SampleRate != config.SampleRate:
		return info, malformed("sample rate %d", pcm.SampleRate)
	case pcm.DataSize != int64(2*n):
		return info, malformed("data size %d for %d samples", pcm.DataSize, n)
	case riffSize != uint32(config.WAVHeaderSize-8+2*n):
		return info, malformed("RIFF size %d, want %d", riffSize, config.WAVHeaderSize-8+2*n)
	}

	for i, s := range pcm.Samples {
		if s > config.MaxAmplitude || s < -config.MaxAmplitude {
			return info, malformed("sample %d = %d out of range", i, s)
		}
	}

	samples := pcm.Normalized()
	info.Peak, info.RMS = audio.Levels(samples)
	if n >= 2 && info.Peak > 0 {
		if info.Dominant, err = audio.DominantFrequency(samples, pcm.SampleRate); err != nil {
			return info, err
		}
	}

	return info, nil
}

func readRIFFSize(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var head struct {
		ID   [4]byte
		Size uint32
		Form [4]byte
	}
	if err := binary.Read(f, binary.LittleEndian, &head); err != nil {
		return 0, malformed("short RIFF header: %v", err)
	}
	if string(head.ID[:]) != "RIFF" || string(head.Form[:]) != "WAVE" {
		return 0, malformed("not a RIFF/WAVE file")
	}
	return head.Size, nil
}

// MeshInfo counts the elements of a checked OBJ file.
type MeshInfo struct {
	Vertices  int
	TexCoords int
	Normals   int
	Faces     int
}

// Mesh parses an OBJ file and checks that every face has at least three
// corners and references only elements defined above it.
func Mesh(path string) (MeshInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return MeshInfo{}, err
	}
	defer f.Close()

	var info MeshInfo
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			err = expectFloats(fields[1:], 3)
			info.Vertices++
		case "vt":
			err = expectFloats(fields[1:], 2)
			info.TexCoords++
		case "vn":
			err = expectFloats(fields[1:], 3)
			info.Normals++
		case "f":
			err = info.checkFace(fields[1:])
			info.Faces++
		default:
			err = fmt.Errorf("unknown statement %q", fields[0])
		}
		if err != nil {
			return info, malformed("line %d: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return info, err
	}

	return info, nil
}

func expectFloats(fields []string, n int) error {
	if len(fields) != n {
		return fmt.Errorf("want %d numbers, got %d", n, len(fields))
	}
	for _, s := range fields {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return err
		}
	}
	return nil
}

func (m MeshInfo) checkFace(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face with %d corners", len(corners))
	}

	limits := [3]int{m.Vertices, m.TexCoords, m.Normals}
	names := [3]string{"vertex", "texcoord", "normal"}

	for _, corner := range corners {
		parts := strings.Split(corner, "/")
		if len(parts) > 3 {
			return fmt.Errorf("bad face corner %q", corner)
		}
		for i, part := range parts {
			if part == "" {
				if i == 0 {
					return fmt.Errorf("face corner %q has no vertex", corner)
				}
				continue
			}
			idx, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("bad face corner %q: %w", corner, err)
			}
			if idx < 1 || idx > limits[i] {
				return fmt.Errorf("%s %d referenced with %d defined", names[i], idx, limits[i])
			}
		}
	}
	return nil
}
