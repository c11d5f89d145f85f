package viewer

import (
	"github.com/Faultbox/vtfview/pkg/vtf"
)

// Range is an inclusive selection range.
type Range struct {
	Min, Max int
}

// Clamp constrains v to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Settings is the viewer settings surface: the frame/face/mip selection, the
// start frame and the texture flag checkboxes. Selection changes touch only
// the canvas; start frame and flag changes write through to the document and
// report a modification, except while a document is being installed.
type Settings struct {
	file   *vtf.File
	canvas *Canvas

	// onModified is invoked on every user-driven document edit.
	onModified func()

	// loading suppresses modification reports while SetVTF populates the
	// controls from the file.
	loading bool

	frame, face, mip, startFrame int
	flagStates                   []bool

	FrameRange, FaceRange, MipRange, StartFrameRange Range
}

// NewSettings creates a settings surface bound to a canvas. onModified may
// be nil.
func NewSettings(canvas *Canvas, onModified func()) *Settings {
	return &Settings{
		canvas:     canvas,
		onModified: onModified,
		flagStates: make([]bool, len(FlagTable)),
	}
}

func (s *Settings) modified() {
	if s.loading || s.onModified == nil {
		return
	}
	s.onModified()
}

// SetVTF populates the controls from a new document. Ranges are computed
// before any value is applied so that every applied value is in range. A nil
// file resets the surface to its empty state.
func (s *Settings) SetVTF(f *vtf.File) {
	s.loading = true
	defer func() { s.loading = false }()

	s.file = f
	if f == nil {
		s.FrameRange, s.FaceRange = Range{}, Range{}
		s.MipRange, s.StartFrameRange = Range{}, Range{}
		s.frame, s.face, s.mip, s.startFrame = 0, 0, 0, 0
		for i := range s.flagStates {
			s.flagStates[i] = false
		}
		return
	}

	s.FrameRange = Range{Min: 1, Max: f.FrameCount()}
	s.FaceRange = Range{Min: 1, Max: f.FaceCount()}
	s.MipRange = Range{Min: 0, Max: f.MipmapCount()}
	s.StartFrameRange = Range{Min: 1, Max: f.FrameCount()}

	s.startFrame = s.StartFrameRange.Clamp(f.StartFrame() + 1)
	s.frame = s.FrameRange.Clamp(s.startFrame)
	s.face = 1
	s.mip = 0

	for i, desc := range FlagTable {
		s.flagStates[i] = f.Flag(desc.Bit)
	}

	if s.canvas != nil {
		s.canvas.SetFrame(s.frame)
		s.canvas.SetFace(s.face)
		s.canvas.SetMip(s.mip)
	}
}

// Frame returns the selected frame (1-based).
func (s *Settings) Frame() int { return s.frame }

// Face returns the selected face (1-based).
func (s *Settings) Face() int { return s.face }

// Mip returns the selected mip level (0-based).
func (s *Settings) Mip() int { return s.mip }

// StartFrame returns the start frame control value (1-based).
func (s *Settings) StartFrame() int { return s.startFrame }

// FlagState returns the checkbox state of the i-th flag descriptor.
func (s *Settings) FlagState(i int) bool { return s.flagStates[i] }

// SetFrame applies a frame selection. Selection is a view concern and never
// marks the document modified.
func (s *Settings) SetFrame(n int) {
	s.frame = s.FrameRange.Clamp(n)
	if s.canvas != nil {
		s.canvas.SetFrame(s.frame)
	}
}

// SetFace applies a face selection.
func (s *Settings) SetFace(n int) {
	s.face = s.FaceRange.Clamp(n)
	if s.canvas != nil {
		s.canvas.SetFace(s.face)
	}
}

// SetMip applies a mip selection.
func (s *Settings) SetMip(n int) {
	s.mip = s.MipRange.Clamp(n)
	if s.canvas != nil {
		s.canvas.SetMip(s.mip)
	}
}

// SetStartFrame writes a new start frame through to the document and reports
// a modification. The control is 1-based; the file stores it 0-based.
func (s *Settings) SetStartFrame(n int) {
	n = s.StartFrameRange.Clamp(n)
	if n == s.startFrame {
		return
	}
	s.startFrame = n
	if s.file != nil {
		s.file.SetStartFrame(n - 1)
	}
	s.modified()
}

// SetFlag writes a flag checkbox state through to the document and reports a
// modification.
func (s *Settings) SetFlag(i int, on bool) {
	if i < 0 || i >= len(FlagTable) || s.flagStates[i] == on {
		return
	}
	s.flagStates[i] = on
	if s.file != nil {
		s.file.SetFlag(FlagTable[i].Bit, on)
	}
	s.modified()
}
