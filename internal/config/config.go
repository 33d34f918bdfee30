package config

// Audio settings
const (
	SampleRate    = 44100
	BitDepth      = 16
	Channels      = 1
	MaxAmplitude  = 32767 // Symmetric clamp; -32768 is never written
	WAVHeaderSize = 44
)

// Raster settings
const (
	BMPHeaderSize  = 54 // 14-byte file header + 40-byte info header
	BMPInfoSize    = 40
	BitsPerPixel   = 24
	BytesPerPixel  = 3
	GroundTextureW = 512
	GroundTextureH = 512
	WallTextureW   = 256
	WallTextureH   = 256
)

// Generation defaults
const (
	DefaultOutputDir = "assets"
	DefaultSeed      = 1
	MusicDuration    = 30.0 // Background score length in seconds

	// Audio chunk size used when streaming samples to the WAV encoder
	ChunkSamples = 4096

	// FFT window cap for dominant frequency estimation during verification
	MaxFFTSize = 8192
)

// Contact sheet layout
const (
	SheetCellSize   = 256 // Each texture is scaled into a square cell
	SheetLabelSize  = 18  // Label font size in points
	SheetLabelPad   = 28  // Vertical space reserved under each cell for its label
	SheetMargin     = 12
	SheetColumns    = 3
	SheetBackground = 0x20 // Grey level of the sheet background
)
