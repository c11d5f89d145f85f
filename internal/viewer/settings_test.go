package viewer

import (
	"testing"

	"github.com/Faultbox/vtfview/pkg/vtf"
)

func TestSettings_SetVTFPopulatesRanges(t *testing.T) {
	s := NewSettings(NewCanvas(), nil)
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 4, 3, vtf.FormatRGBA8888, 0, 0)))

	if s.FrameRange != (Range{1, 4}) {
		t.Errorf("frame range = %v, want [1,4]", s.FrameRange)
	}
	if s.FaceRange != (Range{1, 1}) {
		t.Errorf("face range = %v, want [1,1]", s.FaceRange)
	}
	if s.MipRange != (Range{0, 3}) {
		t.Errorf("mip range = %v, want [0,3]", s.MipRange)
	}
	if s.StartFrameRange != (Range{1, 4}) {
		t.Errorf("start frame range = %v, want [1,4]", s.StartFrameRange)
	}
}

func TestSettings_SelectionResetOnLoad(t *testing.T) {
	canvas := NewCanvas()
	s := NewSettings(canvas, nil)

	// The header stores the start frame 0-based; the controls present it
	// 1-based, and the frame selection starts there.
	f := loadVTF(t, buildVTF(8, 8, 4, 2, vtf.FormatRGBA8888, 0, 2))
	canvas.SetVTF(f)
	s.SetVTF(f)

	if s.StartFrame() != 3 {
		t.Errorf("start frame = %d, want 3", s.StartFrame())
	}
	if s.Frame() != 3 || s.Face() != 1 || s.Mip() != 0 {
		t.Errorf("selection = (%d,%d,%d), want (3,1,0)", s.Frame(), s.Face(), s.Mip())
	}
	if canvas.Frame() != 3 || canvas.Face() != 1 || canvas.Mip() != 0 {
		t.Error("canvas selection must follow the settings reset")
	}
}

func TestSettings_StartFrameClampedOnLoad(t *testing.T) {
	s := NewSettings(nil, nil)
	// Header start frame beyond the frame count clamps to the last frame.
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 2, 1, vtf.FormatRGBA8888, 0, 9)))
	if s.StartFrame() != 2 {
		t.Errorf("start frame = %d, want clamp to 2", s.StartFrame())
	}
}

func TestSettings_LoadingGuard(t *testing.T) {
	edits := 0
	s := NewSettings(NewCanvas(), func() { edits++ })

	// Populating the controls from a document must not count as an edit,
	// even though it writes start frame and flag states.
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 4, 2, vtf.FormatRGBA8888, vtf.FlagSRGB|vtf.FlagNoMip, 1)))
	if edits != 0 {
		t.Fatalf("synchronization fired %d edit reports", edits)
	}

	s.SetStartFrame(3)
	if edits != 1 {
		t.Errorf("user edit reports = %d, want 1", edits)
	}
}

func TestSettings_SelectionDoesNotReportEdits(t *testing.T) {
	edits := 0
	canvas := NewCanvas()
	s := NewSettings(canvas, func() { edits++ })
	f := loadVTF(t, buildVTF(8, 8, 4, 3, vtf.FormatRGBA8888, 0, 0))
	canvas.SetVTF(f)
	s.SetVTF(f)

	s.SetFrame(2)
	s.SetMip(1)
	s.SetFace(1)

	if edits != 0 {
		t.Errorf("selection changes fired %d edit reports", edits)
	}
	if canvas.Frame() != 2 || canvas.Mip() != 1 {
		t.Error("selection must reach the canvas")
	}
}

func TestSettings_RangeEnforcement(t *testing.T) {
	s := NewSettings(NewCanvas(), nil)
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 4, 3, vtf.FormatRGBA8888, 0, 0)))

	s.SetFrame(99)
	if s.Frame() != 4 {
		t.Errorf("frame = %d, want clamp to 4", s.Frame())
	}
	s.SetFrame(0)
	if s.Frame() != 1 {
		t.Errorf("frame = %d, want clamp to 1", s.Frame())
	}
	s.SetMip(-1)
	if s.Mip() != 0 {
		t.Errorf("mip = %d, want clamp to 0", s.Mip())
	}
	s.SetMip(99)
	if s.Mip() != 3 {
		t.Errorf("mip = %d, want clamp to 3", s.Mip())
	}
	s.SetStartFrame(99)
	if s.StartFrame() != 4 {
		t.Errorf("start frame = %d, want clamp to 4", s.StartFrame())
	}
}

func TestSettings_StartFrameWritesThrough(t *testing.T) {
	edits := 0
	s := NewSettings(nil, func() { edits++ })
	f := loadVTF(t, buildVTF(8, 8, 4, 1, vtf.FormatRGBA8888, 0, 0))
	s.SetVTF(f)

	s.SetStartFrame(3)
	if f.StartFrame() != 2 {
		t.Errorf("document start frame = %d, want 2 (0-based)", f.StartFrame())
	}
	if edits != 1 {
		t.Errorf("edit reports = %d, want 1", edits)
	}

	// Re-applying the same value is not an edit.
	s.SetStartFrame(3)
	if edits != 1 {
		t.Errorf("edit reports after no-op = %d, want 1", edits)
	}
}

func TestSettings_FlagWritesThrough(t *testing.T) {
	edits := 0
	s := NewSettings(nil, func() { edits++ })
	f := loadVTF(t, buildVTF(8, 8, 1, 1, vtf.FormatRGBA8888, 0, 0))
	s.SetVTF(f)

	srgb := -1
	for i, desc := range FlagTable {
		if desc.Bit == vtf.FlagSRGB {
			srgb = i
			break
		}
	}
	if srgb < 0 {
		t.Fatal("sRGB missing from the flag table")
	}

	s.SetFlag(srgb, true)
	if !f.Flag(vtf.FlagSRGB) {
		t.Error("flag edit did not reach the document")
	}
	if !s.FlagState(srgb) {
		t.Error("checkbox state did not update")
	}
	if edits != 1 {
		t.Errorf("edit reports = %d, want 1", edits)
	}

	// Same state again is a no-op.
	s.SetFlag(srgb, true)
	if edits != 1 {
		t.Errorf("edit reports after no-op = %d, want 1", edits)
	}

	s.SetFlag(srgb, false)
	if f.Flag(vtf.FlagSRGB) {
		t.Error("clearing the flag did not reach the document")
	}
	if edits != 2 {
		t.Errorf("edit reports = %d, want 2", edits)
	}
}

func TestSettings_EnvmapFaceRange(t *testing.T) {
	s := NewSettings(nil, nil)
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 1, 1, vtf.FormatRGBA8888, vtf.FlagEnvmap, 0)))
	if s.FaceRange != (Range{1, 6}) {
		t.Errorf("face range = %v, want [1,6]", s.FaceRange)
	}
}

func TestSettings_NilFileResets(t *testing.T) {
	s := NewSettings(nil, nil)
	s.SetVTF(loadVTF(t, buildVTF(8, 8, 4, 2, vtf.FormatRGBA8888, vtf.FlagSRGB, 0)))
	s.SetVTF(nil)

	if s.FrameRange != (Range{}) || s.MipRange != (Range{}) {
		t.Error("ranges must reset on unload")
	}
	for i := range FlagTable {
		if s.FlagState(i) {
			t.Fatalf("flag %d still set after unload", i)
		}
	}
}
