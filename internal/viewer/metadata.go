package viewer

import (
	"fmt"

	"github.com/Faultbox/vtfview/pkg/vtf"
)

// Field is one label/value row of the info panel.
type Field struct {
	Label string
	Value string
}

// Metadata holds the ordered file and image info rows for the current
// document. Rows are recomputed once per load, not per paint.
type Metadata struct {
	fileFields  []Field
	imageFields []Field
}

// Update recomputes both field lists from f. A nil file clears them.
func (m *Metadata) Update(f *vtf.File) {
	if f == nil {
		m.fileFields = nil
		m.imageFields = nil
		return
	}

	size := f.Size()
	m.fileFields = []Field{
		{"Size", fmt.Sprintf("%.2f MiB (%.2f KiB)",
			float64(size)/(1024*1024), float64(size)/1024)},
		{"Version", fmt.Sprintf("%d.%d", f.MajorVersion(), f.MinorVersion())},
	}

	rx, ry, rz := f.Reflectivity()
	m.imageFields = []Field{
		{"Width", fmt.Sprintf("%d", f.Width())},
		{"Height", fmt.Sprintf("%d", f.Height())},
		{"Depth", fmt.Sprintf("%d", f.Depth())},
		{"Frames", fmt.Sprintf("%d", f.FrameCount())},
		{"Faces", fmt.Sprintf("%d", f.FaceCount())},
		{"Mips", fmt.Sprintf("%d", f.MipmapCount())},
		{"Image format", f.Format().String()},
		{"Reflectivity", fmt.Sprintf("%.3f %.3f %.3f", rx, ry, rz)},
	}
}

// FileFields returns the file info rows.
func (m *Metadata) FileFields() []Field { return m.fileFields }

// ImageFields returns the image info rows.
func (m *Metadata) ImageFields() []Field { return m.imageFields }
