package vtf

import "testing"

// pixel returns the RGBA tuple at (x, y) of a decoded buffer.
func pixel(buf []byte, x, y, width int) [4]uint8 {
	o := (y*width + x) * 4
	return [4]uint8{buf[o], buf[o+1], buf[o+2], buf[o+3]}
}

func TestDecodeDXT1_SolidColor(t *testing.T) {
	// One block: c0 = pure red in 565, c1 = black, all indices 0.
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0}
	dst := make([]byte, 4*4*4)
	decodeDXT1(block, dst, 4, 4)

	expected := [4]uint8{255, 0, 0, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pixel(dst, x, y, 4); got != expected {
				t.Fatalf("pixel (%d,%d): got %v, expected %v", x, y, got, expected)
			}
		}
	}
}

func TestDecodeDXT1_OneBitAlpha(t *testing.T) {
	// c0 <= c1 selects the 3-color mode where index 3 is transparent.
	block := []byte{0x00, 0x00, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF}
	dst := make([]byte, 4*4*4)
	decodeDXT1(block, dst, 4, 4)

	if got := pixel(dst, 0, 0, 4); got != [4]uint8{0, 0, 0, 0} {
		t.Errorf("expected transparent pixel, got %v", got)
	}
}

func TestDecodeDXT1_Interpolated(t *testing.T) {
	// c0 = white, c1 = black, all indices 2: 2/3 white.
	block := []byte{0xFF, 0xFF, 0x00, 0x00, 0xAA, 0xAA, 0xAA, 0xAA}
	dst := make([]byte, 4*4*4)
	decodeDXT1(block, dst, 4, 4)

	got := pixel(dst, 0, 0, 4)
	if got[3] != 255 {
		t.Fatalf("expected opaque pixel, got alpha %d", got[3])
	}
	// (2*255 + 0) / 3 = 170
	if got[0] != 170 || got[1] != 170 || got[2] != 170 {
		t.Errorf("expected 2/3 gray (170), got %v", got)
	}
}

func TestDecodeDXT3_ExplicitAlpha(t *testing.T) {
	block := make([]byte, 16)
	// Alpha nibbles: first pixel 0x0, rest 0xF.
	for i := 0; i < 8; i++ {
		block[i] = 0xFF
	}
	block[0] = 0xF0
	// Color: solid blue.
	block[8] = 0x1F
	block[9] = 0x00

	dst := make([]byte, 4*4*4)
	decodeDXT3(block, dst, 4, 4)

	if got := pixel(dst, 0, 0, 4); got != [4]uint8{0, 0, 255, 0} {
		t.Errorf("pixel (0,0): got %v, expected transparent blue", got)
	}
	if got := pixel(dst, 1, 0, 4); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("pixel (1,0): got %v, expected opaque blue", got)
	}
}

func TestDecodeDXT5_AlphaModes(t *testing.T) {
	// a0 > a1: 8-value interpolated table, all indices 0 -> a0.
	block := make([]byte, 16)
	block[0] = 200
	block[1] = 10
	// Color: solid green.
	block[8] = 0xE0
	block[9] = 0x07

	dst := make([]byte, 4*4*4)
	decodeDXT5(block, dst, 4, 4)
	if got := pixel(dst, 0, 0, 4); got != [4]uint8{0, 255, 0, 200} {
		t.Errorf("interpolated mode: got %v, expected green alpha 200", got)
	}

	// a0 <= a1: 6-value table where index 7 is forced to 255.
	block[0] = 0
	block[1] = 100
	for i := 2; i < 8; i++ {
		block[i] = 0xFF // all 3-bit indices = 7
	}
	dst = make([]byte, 4*4*4)
	decodeDXT5(block, dst, 4, 4)
	if got := pixel(dst, 0, 0, 4); got[3] != 255 {
		t.Errorf("six-value mode index 7: got alpha %d, expected 255", got[3])
	}
}

func TestDecodeDXT1_PartialBlock(t *testing.T) {
	// A 2x2 image still consumes one full block: the clipped edge texels
	// must eat their 2-bit indices so in-bounds rows stay aligned. c0 = red,
	// c1 = blue; per-texel indices alternate the endpoints and the clipped
	// positions carry index 3 as a misalignment tripwire.
	block := []byte{
		0x00, 0xF8, // c0: red
		0x1F, 0x00, // c1: blue
		0xF4, // row 0: red, blue, (3), (3)
		0xF1, // row 1: blue, red, (3), (3)
		0xFF, // row 2: clipped
		0xFF, // row 3: clipped
	}
	dst := make([]byte, 2*2*4)
	decodeDXT1(block, dst, 2, 2)

	red := [4]uint8{255, 0, 0, 255}
	blue := [4]uint8{0, 0, 255, 255}
	expected := map[[2]int][4]uint8{
		{0, 0}: red,
		{1, 0}: blue,
		{0, 1}: blue,
		{1, 1}: red,
	}
	for pos, want := range expected {
		if got := pixel(dst, pos[0], pos[1], 2); got != want {
			t.Errorf("pixel (%d,%d): got %v, expected %v", pos[0], pos[1], got, want)
		}
	}
}
