package viewer

import (
	"fmt"

	"github.com/Faultbox/vtfview/pkg/vtf"
)

// ResourceRow is one row of the resource listing.
type ResourceRow struct {
	Name string
	Type uint32
	Size int
}

// TypeLabel formats the resource type code for display.
func (r ResourceRow) TypeLabel() string { return fmt.Sprintf("0x%X", r.Type) }

// SizeLabel formats the resource payload size for display.
func (r ResourceRow) SizeLabel() string {
	return fmt.Sprintf("%d bytes (%.2f KiB)", r.Size, float64(r.Size)/1024)
}

// ResourceList holds the resource rows of the current document. Files
// before version 7.3 carry no dictionary and produce an empty list.
type ResourceList struct {
	rows []ResourceRow
}

// Update rebuilds the rows from f. Entries whose payload cannot be read
// are listed with a zero size rather than dropped.
func (l *ResourceList) Update(f *vtf.File) {
	l.rows = nil
	if f == nil {
		return
	}
	for i := 0; i < f.ResourceCount(); i++ {
		typ, err := f.ResourceType(i)
		if err != nil {
			continue
		}
		size := 0
		if data, err := f.ResourceData(typ); err == nil {
			size = len(data)
		}
		l.rows = append(l.rows, ResourceRow{
			Name: vtf.ResourceName(typ),
			Type: typ,
			Size: size,
		})
	}
}

// Rows returns the current rows.
func (l *ResourceList) Rows() []ResourceRow { return l.rows }
