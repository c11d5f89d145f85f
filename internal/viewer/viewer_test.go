package viewer

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/Faultbox/vtfview/pkg/vtf"
)

// buildVTF builds a synthetic version 7.2 container for viewer tests.
func buildVTF(w, h, frames, mips int, format vtf.ImageFormat, flags vtf.TextureFlags, firstFrame uint16) []byte {
	le := binary.LittleEndian
	header := make([]byte, 80)
	copy(header, "VTF\x00")
	le.PutUint32(header[4:], 7)
	le.PutUint32(header[8:], 2)
	le.PutUint32(header[12:], 80)
	le.PutUint16(header[16:], uint16(w))
	le.PutUint16(header[18:], uint16(h))
	le.PutUint32(header[20:], uint32(flags))
	le.PutUint16(header[24:], uint16(frames))
	le.PutUint16(header[26:], firstFrame)
	le.PutUint32(header[32:], math.Float32bits(0.2))
	le.PutUint32(header[36:], math.Float32bits(0.4))
	le.PutUint32(header[40:], math.Float32bits(0.6))
	le.PutUint32(header[48:], math.Float32bits(1.0))
	le.PutUint32(header[52:], uint32(format))
	header[56] = byte(mips)
	le.PutUint32(header[57:], uint32(0xFFFFFFFF)) // no thumbnail
	le.PutUint16(header[63:], 1)                  // depth

	faces := 1
	if flags&vtf.FlagEnvmap != 0 {
		faces = 6
	}

	var buf bytes.Buffer
	buf.Write(header)
	for mip := mips - 1; mip >= 0; mip-- {
		size := vtf.MipmapSize(w, h, 1, mip, format)
		for frame := 0; frame < frames; frame++ {
			for face := 0; face < faces; face++ {
				fill := byte(0x10*mip + 4*frame + face + 1)
				buf.Write(bytes.Repeat([]byte{fill}, size))
			}
		}
	}
	return buf.Bytes()
}

// buildVTF75 builds a single-frame, single-mip version 7.5 container with a
// three-entry resource dictionary: high-res image, inline CRC, keyvalue body.
func buildVTF75(w, h int, format vtf.ImageFormat, kvd []byte) []byte {
	le := binary.LittleEndian
	const headerSize = 80 + 3*8

	header := make([]byte, headerSize)
	copy(header, "VTF\x00")
	le.PutUint32(header[4:], 7)
	le.PutUint32(header[8:], 5)
	le.PutUint32(header[12:], headerSize)
	le.PutUint16(header[16:], uint16(w))
	le.PutUint16(header[18:], uint16(h))
	le.PutUint16(header[24:], 1)
	le.PutUint32(header[32:], math.Float32bits(0.5))
	le.PutUint32(header[36:], math.Float32bits(0.5))
	le.PutUint32(header[40:], math.Float32bits(0.5))
	le.PutUint32(header[52:], uint32(format))
	header[56] = 1
	le.PutUint32(header[57:], uint32(0xFFFFFFFF))
	le.PutUint16(header[63:], 1)
	le.PutUint32(header[68:], 3)

	lumpSize := vtf.MipmapSize(w, h, 1, 0, format)

	entry := header[80:]
	entry[0] = 0x30 // high-res image
	le.PutUint32(entry[4:], headerSize)

	entry = header[88:]
	copy(entry, "CRC")
	entry[3] = 0x02 // value inlined in the offset field
	le.PutUint32(entry[4:], 0xDEADBEEF)

	entry = header[96:]
	copy(entry, "KVD")
	le.PutUint32(entry[4:], uint32(headerSize+lumpSize))

	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(bytes.Repeat([]byte{0x01}, lumpSize))
	binary.Write(&buf, binary.LittleEndian, uint32(len(kvd)))
	buf.Write(kvd)
	return buf.Bytes()
}

func loadVTF(t *testing.T, data []byte) *vtf.File {
	t.Helper()
	f, err := vtf.Load(data)
	if err != nil {
		t.Fatalf("loading test VTF: %v", err)
	}
	return f
}

// stubPrompter answers every prompt with canned values and records its calls.
type stubPrompter struct {
	saveName string
	saveOK   bool
	choice   CloseChoice

	saveNameCalls int
	warnings      []string
}

func (p *stubPrompter) SaveFileName() (string, bool) {
	p.saveNameCalls++
	return p.saveName, p.saveOK
}

func (p *stubPrompter) ConfirmUnsaved() CloseChoice { return p.choice }

func (p *stubPrompter) WarnSaveFailed(reason string) {
	p.warnings = append(p.warnings, reason)
}
