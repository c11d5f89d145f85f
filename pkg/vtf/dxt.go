package vtf

import "encoding/binary"

// DXT block decompression. All three variants share the 4x4 block layout:
// DXT1 packs two RGB565 endpoints and 2-bit indices into 8 bytes; DXT3 and
// DXT5 prepend an 8-byte alpha block (explicit 4-bit and interpolated,
// respectively) to a DXT1 color block that is always in 4-color mode.

// rgb565 expands a packed 565 value to 8-bit channels.
func rgb565(v uint16) (r, g, b uint8) {
	r = uint8((v >> 11) & 0x1F)
	g = uint8((v >> 5) & 0x3F)
	b = uint8(v & 0x1F)
	// Replicate high bits into the low bits for a full 0-255 range.
	r = r<<3 | r>>2
	g = g<<2 | g>>4
	b = b<<3 | b>>2
	return
}

// decodeColorBlock decodes the 8-byte color half of a DXT block into the
// destination RGBA image. oneBitAlpha selects the DXT1 3-color+transparent
// mode when the first endpoint is not greater than the second.
func decodeColorBlock(block []byte, dst []byte, x, y, width, height int, oneBitAlpha bool) {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])
	bits := binary.LittleEndian.Uint32(block[4:8])

	var colors [4][4]uint8
	r0, g0, b0 := rgb565(c0)
	r1, g1, b1 := rgb565(c1)
	colors[0] = [4]uint8{r0, g0, b0, 255}
	colors[1] = [4]uint8{r1, g1, b1, 255}

	if c0 > c1 || !oneBitAlpha {
		colors[2] = [4]uint8{
			uint8((2*int(r0) + int(r1)) / 3),
			uint8((2*int(g0) + int(g1)) / 3),
			uint8((2*int(b0) + int(b1)) / 3),
			255,
		}
		colors[3] = [4]uint8{
			uint8((int(r0) + 2*int(r1)) / 3),
			uint8((int(g0) + 2*int(g1)) / 3),
			uint8((int(b0) + 2*int(b1)) / 3),
			255,
		}
	} else {
		colors[2] = [4]uint8{
			uint8((int(r0) + int(r1)) / 2),
			uint8((int(g0) + int(g1)) / 2),
			uint8((int(b0) + int(b1)) / 2),
			255,
		}
		colors[3] = [4]uint8{0, 0, 0, 0}
	}

	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			// The index stream covers the full 4x4 block, so edge texels
			// consume their bits even when they fall outside the image.
			idx := bits & 3
			bits >>= 2
			ix := x + px
			iy := y + py
			if ix >= width || iy >= height {
				continue
			}
			c := colors[idx]
			o := (iy*width + ix) * 4
			dst[o] = c[0]
			dst[o+1] = c[1]
			dst[o+2] = c[2]
			dst[o+3] = c[3]
		}
	}
}

// decodeDXT1 decompresses a DXT1 image into RGBA8888.
func decodeDXT1(src, dst []byte, width, height int) {
	blocksWide := (width + 3) / 4
	blocksHigh := (height + 3) / 4
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			block := src[(by*blocksWide+bx)*8:]
			decodeColorBlock(block[:8], dst, bx*4, by*4, width, height, true)
		}
	}
}

// decodeDXT3 decompresses a DXT3 image into RGBA8888.
func decodeDXT3(src, dst []byte, width, height int) {
	blocksWide := (width + 3) / 4
	blocksHigh := (height + 3) / 4
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			block := src[(by*blocksWide+bx)*16:]
			decodeColorBlock(block[8:16], dst, bx*4, by*4, width, height, false)

			// 4-bit explicit alpha, one nibble per pixel.
			alpha := binary.LittleEndian.Uint64(block[0:8])
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					ix := bx*4 + px
					iy := by*4 + py
					if ix >= width || iy >= height {
						alpha >>= 4
						continue
					}
					a := uint8(alpha & 0xF)
					alpha >>= 4
					dst[(iy*width+ix)*4+3] = a<<4 | a
				}
			}
		}
	}
}

// decodeDXT5 decompresses a DXT5 image into RGBA8888.
func decodeDXT5(src, dst []byte, width, height int) {
	blocksWide := (width + 3) / 4
	blocksHigh := (height + 3) / 4
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			block := src[(by*blocksWide+bx)*16:]
			decodeColorBlock(block[8:16], dst, bx*4, by*4, width, height, false)

			a0 := block[0]
			a1 := block[1]
			var table [8]uint8
			table[0] = a0
			table[1] = a1
			if a0 > a1 {
				for i := 1; i < 7; i++ {
					table[i+1] = uint8(((7-i)*int(a0) + i*int(a1)) / 7)
				}
			} else {
				for i := 1; i < 5; i++ {
					table[i+1] = uint8(((5-i)*int(a0) + i*int(a1)) / 5)
				}
				table[6] = 0
				table[7] = 255
			}

			// 48 bits of 3-bit indices.
			bits := uint64(block[2]) | uint64(block[3])<<8 | uint64(block[4])<<16 |
				uint64(block[5])<<24 | uint64(block[6])<<32 | uint64(block[7])<<40
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					ix := bx*4 + px
					iy := by*4 + py
					idx := bits & 7
					bits >>= 3
					if ix >= width || iy >= height {
						continue
					}
					dst[(iy*width+ix)*4+3] = table[idx]
				}
			}
		}
	}
}
