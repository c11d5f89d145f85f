package vtf

import "fmt"

// ImageFormat identifies a pixel storage format used by VTF textures.
// Values match the on-disk enumeration.
type ImageFormat int32

// Image formats, in on-disk enumeration order.
const (
	FormatRGBA8888 ImageFormat = iota
	FormatABGR8888
	FormatRGB888
	FormatBGR888
	FormatRGB565
	FormatI8
	FormatIA88
	FormatP8
	FormatA8
	FormatRGB888BlueScreen
	FormatBGR888BlueScreen
	FormatARGB8888
	FormatBGRA8888
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatBGRX8888
	FormatBGR565
	FormatBGRX5551
	FormatBGRA4444
	FormatDXT1OneBitAlpha
	FormatBGRA5551
	FormatUV88
	FormatUVWQ8888
	FormatRGBA16161616F
	FormatRGBA16161616
	FormatUVLX8888

	formatCount
	FormatNone ImageFormat = -1
)

// FormatDesc describes the storage properties of an image format.
type FormatDesc struct {
	Name              string
	BitsPerPixel      int
	BytesPerPixel     int
	RedBitsPerPixel   int
	GreenBitsPerPixel int
	BlueBitsPerPixel  int
	AlphaBitsPerPixel int
	Compressed        bool
	BlockSize         int // bytes per 4x4 block for compressed formats
}

var formatTable = [formatCount]FormatDesc{
	FormatRGBA8888:         {"RGBA8888", 32, 4, 8, 8, 8, 8, false, 0},
	FormatABGR8888:         {"ABGR8888", 32, 4, 8, 8, 8, 8, false, 0},
	FormatRGB888:           {"RGB888", 24, 3, 8, 8, 8, 0, false, 0},
	FormatBGR888:           {"BGR888", 24, 3, 8, 8, 8, 0, false, 0},
	FormatRGB565:           {"RGB565", 16, 2, 5, 6, 5, 0, false, 0},
	FormatI8:               {"I8", 8, 1, 8, 8, 8, 0, false, 0},
	FormatIA88:             {"IA88", 16, 2, 8, 8, 8, 8, false, 0},
	FormatP8:               {"P8", 8, 1, 8, 8, 8, 0, false, 0},
	FormatA8:               {"A8", 8, 1, 0, 0, 0, 8, false, 0},
	FormatRGB888BlueScreen: {"RGB888 Bluescreen", 24, 3, 8, 8, 8, 0, false, 0},
	FormatBGR888BlueScreen: {"BGR888 Bluescreen", 24, 3, 8, 8, 8, 0, false, 0},
	FormatARGB8888:         {"ARGB8888", 32, 4, 8, 8, 8, 8, false, 0},
	FormatBGRA8888:         {"BGRA8888", 32, 4, 8, 8, 8, 8, false, 0},
	FormatDXT1:             {"DXT1", 4, 0, 0, 0, 0, 0, true, 8},
	FormatDXT3:             {"DXT3", 8, 0, 0, 0, 0, 8, true, 16},
	FormatDXT5:             {"DXT5", 8, 0, 0, 0, 0, 8, true, 16},
	FormatBGRX8888:         {"BGRX8888", 32, 4, 8, 8, 8, 0, false, 0},
	FormatBGR565:           {"BGR565", 16, 2, 5, 6, 5, 0, false, 0},
	FormatBGRX5551:         {"BGRX5551", 16, 2, 5, 5, 5, 0, false, 0},
	FormatBGRA4444:         {"BGRA4444", 16, 2, 4, 4, 4, 4, false, 0},
	FormatDXT1OneBitAlpha:  {"DXT1 One-bit Alpha", 4, 0, 0, 0, 0, 1, true, 8},
	FormatBGRA5551:         {"BGRA5551", 16, 2, 5, 5, 5, 1, false, 0},
	FormatUV88:             {"UV88", 16, 2, 8, 8, 0, 0, false, 0},
	FormatUVWQ8888:         {"UVWQ8888", 32, 4, 8, 8, 8, 8, false, 0},
	FormatRGBA16161616F:    {"RGBA16161616F", 64, 8, 16, 16, 16, 16, false, 0},
	FormatRGBA16161616:     {"RGBA16161616", 64, 8, 16, 16, 16, 16, false, 0},
	FormatUVLX8888:         {"UVLX8888", 32, 4, 8, 8, 8, 0, false, 0},
}

// FormatInfo returns the storage description of a format.
// Unknown formats yield a zero descriptor with a placeholder name.
func FormatInfo(f ImageFormat) FormatDesc {
	if f < 0 || f >= formatCount {
		return FormatDesc{Name: fmt.Sprintf("Unknown(%d)", int32(f))}
	}
	return formatTable[f]
}

// FormatName returns a human-readable name for a format.
func FormatName(f ImageFormat) string {
	if f == FormatNone {
		return "None"
	}
	return FormatInfo(f).Name
}

// String implements fmt.Stringer.
func (f ImageFormat) String() string { return FormatName(f) }

// HasAlpha reports whether the format stores any alpha bits.
func (f ImageFormat) HasAlpha() bool { return FormatInfo(f).AlphaBitsPerPixel > 0 }
