package vtf

import "testing"

func TestMipmapDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h, d, mip int
		ew, eh, ed   int
	}{
		{"mip 0 identity", 256, 128, 1, 0, 256, 128, 1},
		{"mip 1 halves", 256, 128, 1, 1, 128, 64, 1},
		{"mip 4", 256, 128, 1, 4, 16, 8, 1},
		{"clamps to 1", 256, 128, 1, 9, 1, 1, 1},
		{"non-square small axis", 64, 4, 1, 4, 4, 1, 1},
		{"volume texture", 64, 64, 8, 2, 16, 16, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, d := MipmapDimensions(tt.w, tt.h, tt.d, tt.mip)
			if w != tt.ew || h != tt.eh || d != tt.ed {
				t.Errorf("got %dx%dx%d, expected %dx%dx%d", w, h, d, tt.ew, tt.eh, tt.ed)
			}
		})
	}
}

func TestMipmapSize(t *testing.T) {
	tests := []struct {
		name      string
		w, h, mip int
		format    ImageFormat
		expected  int
	}{
		{"RGBA8888 base", 16, 16, 0, FormatRGBA8888, 16 * 16 * 4},
		{"RGB888 mip 2", 16, 16, 2, FormatRGB888, 4 * 4 * 3},
		{"RGB565 base", 8, 8, 0, FormatRGB565, 8 * 8 * 2},
		{"DXT1 base", 16, 16, 0, FormatDXT1, 4 * 4 * 8},
		{"DXT5 base", 16, 16, 0, FormatDXT5, 4 * 4 * 16},
		{"DXT1 rounds up to whole blocks", 2, 2, 0, FormatDXT1, 8},
		{"DXT5 smallest mip is one block", 16, 16, 4, FormatDXT5, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MipmapSize(tt.w, tt.h, 1, tt.mip, tt.format)
			if got != tt.expected {
				t.Errorf("got %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestDataOffset_Layout(t *testing.T) {
	// 8x8 RGBA8888, 2 frames, 1 face, 2 mips. Mips are stored smallest to
	// largest, so the lump is: mip1 f0, mip1 f1, mip0 f0, mip0 f1.
	const (
		mip1Size = 4 * 4 * 4
		mip0Size = 8 * 8 * 4
	)

	tests := []struct {
		name       string
		frame, mip int
		expected   int
	}{
		{"smallest mip first frame", 0, 1, 0},
		{"smallest mip second frame", 1, 1, mip1Size},
		{"base mip first frame", 0, 0, 2 * mip1Size},
		{"base mip second frame", 1, 0, 2*mip1Size + mip0Size},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dataOffset(tt.frame, 0, 0, tt.mip, 2, 2, 1, 8, 8, 1, FormatRGBA8888)
			if got != tt.expected {
				t.Errorf("got offset %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestHighResSize(t *testing.T) {
	// 8x8, 2 frames, 2 mips: (4*4 + 8*8) * 4 bytes * 2 frames.
	got := highResSize(8, 8, 1, 2, 2, 1, FormatRGBA8888)
	expected := (16 + 64) * 4 * 2
	if got != expected {
		t.Errorf("got %d, expected %d", got, expected)
	}
}
