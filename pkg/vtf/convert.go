package vtf

import (
	"encoding/binary"
	"fmt"
)

// Conversion errors.
var (
	ErrUnsupportedConversion = fmt.Errorf("unsupported format conversion")
	ErrBufferTooSmall        = fmt.Errorf("conversion buffer too small")
)

// Convert converts a single image between two formats. src must hold at
// least one width x height image in srcFormat and dst must have room for the
// same image in dstFormat. Block-compressed formats are supported as sources
// only.
func Convert(src, dst []byte, width, height int, srcFormat, dstFormat ImageFormat) error {
	if len(src) < imageSize(width, height, 1, srcFormat) {
		return fmt.Errorf("%w: source %d bytes for %dx%d %s", ErrBufferTooSmall, len(src), width, height, srcFormat)
	}
	if len(dst) < imageSize(width, height, 1, dstFormat) {
		return fmt.Errorf("%w: destination %d bytes for %dx%d %s", ErrBufferTooSmall, len(dst), width, height, dstFormat)
	}

	// Fast path: same layout, straight copy.
	if srcFormat == dstFormat {
		copy(dst, src[:imageSize(width, height, 1, srcFormat)])
		return nil
	}

	rgba := make([]byte, width*height*4)
	if err := decodeToRGBA(src, rgba, width, height, srcFormat); err != nil {
		return err
	}
	return encodeFromRGBA(rgba, dst, width, height, dstFormat)
}

// decodeToRGBA expands one image of the given format into RGBA8888.
func decodeToRGBA(src, dst []byte, width, height int, format ImageFormat) error {
	switch format {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		decodeDXT1(src, dst, width, height)
		return nil
	case FormatDXT3:
		decodeDXT3(src, dst, width, height)
		return nil
	case FormatDXT5:
		decodeDXT5(src, dst, width, height)
		return nil
	}

	read := pixelReader(format)
	if read == nil {
		return fmt.Errorf("%w: decoding %s", ErrUnsupportedConversion, format)
	}

	bpp := FormatInfo(format).BytesPerPixel
	n := width * height
	for i := 0; i < n; i++ {
		r, g, b, a := read(src[i*bpp:])
		o := i * 4
		dst[o] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = a
	}
	return nil
}

// encodeFromRGBA packs an RGBA8888 image into the given format.
func encodeFromRGBA(src, dst []byte, width, height int, format ImageFormat) error {
	write := pixelWriter(format)
	if write == nil {
		return fmt.Errorf("%w: encoding %s", ErrUnsupportedConversion, format)
	}

	bpp := FormatInfo(format).BytesPerPixel
	n := width * height
	for i := 0; i < n; i++ {
		o := i * 4
		write(dst[i*bpp:], src[o], src[o+1], src[o+2], src[o+3])
	}
	return nil
}

// pixelReader returns a function extracting one RGBA pixel from a packed
// uncompressed format, or nil when the format is not decodable.
func pixelReader(format ImageFormat) func(p []byte) (r, g, b, a uint8) {
	switch format {
	case FormatRGBA8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], p[2], p[3] }
	case FormatABGR8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[3], p[2], p[1], p[0] }
	case FormatARGB8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[1], p[2], p[3], p[0] }
	case FormatBGRA8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], p[3] }
	case FormatBGRX8888, FormatUVLX8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], 255 }
	case FormatUVWQ8888:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], p[2], p[3] }
	case FormatRGB888, FormatRGB888BlueScreen:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], p[2], 255 }
	case FormatBGR888, FormatBGR888BlueScreen:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], 255 }
	case FormatRGB565:
		return func(p []byte) (uint8, uint8, uint8, uint8) {
			r, g, b := rgb565(binary.LittleEndian.Uint16(p))
			return r, g, b, 255
		}
	case FormatBGR565:
		return func(p []byte) (uint8, uint8, uint8, uint8) {
			b, g, r := rgb565(binary.LittleEndian.Uint16(p))
			return r, g, b, 255
		}
	case FormatBGRA5551, FormatBGRX5551:
		hasAlpha := format == FormatBGRA5551
		return func(p []byte) (uint8, uint8, uint8, uint8) {
			v := binary.LittleEndian.Uint16(p)
			b := uint8(v & 0x1F)
			g := uint8((v >> 5) & 0x1F)
			r := uint8((v >> 10) & 0x1F)
			a := uint8(255)
			if hasAlpha && v&0x8000 == 0 {
				a = 0
			}
			return r<<3 | r>>2, g<<3 | g>>2, b<<3 | b>>2, a
		}
	case FormatBGRA4444:
		return func(p []byte) (uint8, uint8, uint8, uint8) {
			v := binary.LittleEndian.Uint16(p)
			b := uint8(v & 0xF)
			g := uint8((v >> 4) & 0xF)
			r := uint8((v >> 8) & 0xF)
			a := uint8((v >> 12) & 0xF)
			return r<<4 | r, g<<4 | g, b<<4 | b, a<<4 | a
		}
	case FormatI8, FormatP8:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[0], p[0], 255 }
	case FormatIA88:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[0], p[0], p[1] }
	case FormatA8:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return 0, 0, 0, p[0] }
	case FormatUV88:
		return func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], 0, 255 }
	default:
		return nil
	}
}

// pixelWriter returns a function packing one RGBA pixel into an uncompressed
// format, or nil when the format is not encodable.
func pixelWriter(format ImageFormat) func(p []byte, r, g, b, a uint8) {
	switch format {
	case FormatRGBA8888:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2], p[3] = r, g, b, a }
	case FormatABGR8888:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2], p[3] = a, b, g, r }
	case FormatARGB8888:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2], p[3] = a, r, g, b }
	case FormatBGRA8888:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2], p[3] = b, g, r, a }
	case FormatBGRX8888:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2], p[3] = b, g, r, 255 }
	case FormatRGB888, FormatRGB888BlueScreen:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2] = r, g, b }
	case FormatBGR888, FormatBGR888BlueScreen:
		return func(p []byte, r, g, b, a uint8) { p[0], p[1], p[2] = b, g, r }
	case FormatRGB565:
		return func(p []byte, r, g, b, a uint8) {
			binary.LittleEndian.PutUint16(p, uint16(r>>3)<<11|uint16(g>>2)<<5|uint16(b>>3))
		}
	case FormatBGR565:
		return func(p []byte, r, g, b, a uint8) {
			binary.LittleEndian.PutUint16(p, uint16(b>>3)<<11|uint16(g>>2)<<5|uint16(r>>3))
		}
	case FormatBGRA5551:
		return func(p []byte, r, g, b, a uint8) {
			v := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
			if a >= 128 {
				v |= 0x8000
			}
			binary.LittleEndian.PutUint16(p, v)
		}
	case FormatBGRA4444:
		return func(p []byte, r, g, b, a uint8) {
			binary.LittleEndian.PutUint16(p,
				uint16(a>>4)<<12|uint16(r>>4)<<8|uint16(g>>4)<<4|uint16(b>>4))
		}
	case FormatI8:
		return func(p []byte, r, g, b, a uint8) {
			// Rec. 601 luma weights.
			p[0] = uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
		}
	case FormatIA88:
		return func(p []byte, r, g, b, a uint8) {
			p[0] = uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
			p[1] = a
		}
	case FormatA8:
		return func(p []byte, r, g, b, a uint8) { p[0] = a }
	default:
		return nil
	}
}
