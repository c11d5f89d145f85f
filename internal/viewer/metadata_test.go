package viewer

import (
	"fmt"
	"testing"

	"github.com/Faultbox/vtfview/pkg/vtf"
)

func fieldValue(fields []Field, label string) (string, bool) {
	for _, f := range fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func TestMetadata_Update(t *testing.T) {
	var m Metadata
	data := buildVTF(16, 8, 2, 3, vtf.FormatDXT1, 0, 0)
	m.Update(loadVTF(t, data))

	wantSize := fmt.Sprintf("%.2f MiB (%.2f KiB)",
		float64(len(data))/(1024*1024), float64(len(data))/1024)

	fileWant := []Field{
		{"Size", wantSize},
		{"Version", "7.2"},
	}
	for i, want := range fileWant {
		if m.FileFields()[i] != want {
			t.Errorf("file field %d = %v, want %v", i, m.FileFields()[i], want)
		}
	}

	imageWant := []Field{
		{"Width", "16"},
		{"Height", "8"},
		{"Depth", "1"},
		{"Frames", "2"},
		{"Faces", "1"},
		{"Mips", "3"},
		{"Image format", "DXT1"},
		{"Reflectivity", "0.200 0.400 0.600"},
	}
	if len(m.ImageFields()) != len(imageWant) {
		t.Fatalf("image fields = %d, want %d", len(m.ImageFields()), len(imageWant))
	}
	for i, want := range imageWant {
		if m.ImageFields()[i] != want {
			t.Errorf("image field %d = %v, want %v", i, m.ImageFields()[i], want)
		}
	}
}

func TestMetadata_NilClears(t *testing.T) {
	var m Metadata
	m.Update(loadVTF(t, buildVTF(4, 4, 1, 1, vtf.FormatRGBA8888, 0, 0)))
	m.Update(nil)
	if len(m.FileFields()) != 0 || len(m.ImageFields()) != 0 {
		t.Error("nil document must clear the fields")
	}
}

func TestResourceList_PreDictionaryVersions(t *testing.T) {
	var l ResourceList
	l.Update(loadVTF(t, buildVTF(4, 4, 1, 1, vtf.FormatRGBA8888, 0, 0)))
	if len(l.Rows()) != 0 {
		t.Errorf("7.2 file listed %d resources, want 0", len(l.Rows()))
	}
}

func TestResourceList_Dictionary(t *testing.T) {
	kvd := []byte(`"Information"{"Author" "nobody"}`)
	var l ResourceList
	l.Update(loadVTF(t, buildVTF75(8, 8, vtf.FormatRGBA8888, kvd)))

	rows := l.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	if rows[0].Name != "High-res Image" || rows[0].Size != 8*8*4 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Name != "CRC Data" || rows[1].Size != 4 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].Name != "Keyvalue Data" || rows[2].Size != len(kvd) {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestResourceList_NilClears(t *testing.T) {
	var l ResourceList
	l.rows = []ResourceRow{{Name: "stale"}}
	l.Update(nil)
	if len(l.Rows()) != 0 {
		t.Error("nil document must clear the rows")
	}
}

func TestResourceRow_Labels(t *testing.T) {
	r := ResourceRow{Name: "CRC Data", Type: 0x435243, Size: 4}
	if got := r.TypeLabel(); got != "0x435243" {
		t.Errorf("TypeLabel = %q", got)
	}
	if got := r.SizeLabel(); got != "4 bytes (0.00 KiB)" {
		t.Errorf("SizeLabel = %q", got)
	}

	r = ResourceRow{Size: 2048}
	if got := r.SizeLabel(); got != "2048 bytes (2.00 KiB)" {
		t.Errorf("SizeLabel = %q", got)
	}
}
