// Package vtf reads and writes Valve Texture Format containers.
//
// A VTF file holds a block of mipmapped image data per animation frame and
// cubemap face, an optional low-resolution thumbnail, and (from version 7.3)
// a dictionary of auxiliary resources. The package parses the container,
// exposes per-(frame, face, slice, mip) pixel data, converts between pixel
// formats for display, and writes mutated containers back out. Pixel data is
// never re-encoded: saving preserves the source bytes with header fields
// patched in place, so a load/save round trip is lossless.
package vtf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Container errors.
var (
	ErrInvalidMagic       = errors.New("invalid VTF magic: expected \"VTF\\0\"")
	ErrUnsupportedVersion = errors.New("unsupported VTF version")
	ErrTruncated          = errors.New("truncated VTF data")
	ErrNoImageData        = errors.New("VTF has no high-resolution image data")
	ErrRangeExceeded      = errors.New("image index out of range")
	ErrNoSuchResource     = errors.New("no such resource")
)

// Resource type codes. A type is the 3-byte tag of a dictionary entry packed
// into the low 24 bits of a uint32.
const (
	ResourceLowResImage  uint32 = 0x01
	ResourceSheet        uint32 = 0x10
	ResourceHighResImage uint32 = 0x30
	ResourceCRC          uint32 = 'C' | 'R'<<8 | 'C'<<16
	ResourceLODSettings  uint32 = 'L' | 'O'<<8 | 'D'<<16
	ResourceSettingsEx   uint32 = 'T' | 'S'<<8 | 'O'<<16
	ResourceKeyValueData uint32 = 'K' | 'V'<<8 | 'D'<<16
)

// resourceHasNoData marks dictionary entries whose offset field is the data.
const resourceHasNoData = 0x02

// header field offsets within the raw container.
const (
	offFlags      = 20
	offFirstFrame = 26
)

// resource is one dictionary entry from a 7.3+ header.
type resource struct {
	Type   uint32
	Flags  uint8
	Offset uint32
}

// File is a loaded VTF container.
type File struct {
	raw []byte // the whole container; owned by the File

	major, minor uint32
	headerSize   uint32
	width        uint16
	height       uint16
	flags        TextureFlags
	frames       uint16
	firstFrame   uint16
	reflectivity [3]float32
	bumpScale    float32
	format       ImageFormat
	mipCount     uint8
	lowResFormat ImageFormat
	lowResWidth  uint8
	lowResHeight uint8
	depth        uint16

	resources []resource

	lowResOffset  int
	highResOffset int
}

// Load parses a VTF container from a byte buffer. The buffer is copied; the
// returned File does not alias data.
func Load(data []byte) (*File, error) {
	if len(data) < 63 {
		return nil, ErrTruncated
	}
	if data[0] != 'V' || data[1] != 'T' || data[2] != 'F' || data[3] != 0 {
		return nil, ErrInvalidMagic
	}

	f := &File{raw: append([]byte(nil), data...)}
	le := binary.LittleEndian

	f.major = le.Uint32(f.raw[4:])
	f.minor = le.Uint32(f.raw[8:])
	if f.major != 7 || f.minor > 5 {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, f.major, f.minor)
	}

	f.headerSize = le.Uint32(f.raw[12:])
	f.width = le.Uint16(f.raw[16:])
	f.height = le.Uint16(f.raw[18:])
	f.flags = TextureFlags(le.Uint32(f.raw[offFlags:]))
	f.frames = le.Uint16(f.raw[24:])
	f.firstFrame = le.Uint16(f.raw[offFirstFrame:])
	for i := 0; i < 3; i++ {
		f.reflectivity[i] = math.Float32frombits(le.Uint32(f.raw[32+i*4:]))
	}
	f.bumpScale = math.Float32frombits(le.Uint32(f.raw[48:]))
	f.format = ImageFormat(int32(le.Uint32(f.raw[52:])))
	f.mipCount = f.raw[56]
	f.lowResFormat = ImageFormat(int32(le.Uint32(f.raw[57:])))
	f.lowResWidth = f.raw[61]
	f.lowResHeight = f.raw[62]

	f.depth = 1
	if f.minor >= 2 {
		if len(f.raw) < 65 {
			return nil, fmt.Errorf("%w: missing depth field", ErrTruncated)
		}
		f.depth = le.Uint16(f.raw[63:])
		if f.depth == 0 {
			f.depth = 1
		}
	}

	if f.frames == 0 {
		f.frames = 1
	}
	if f.mipCount == 0 {
		return nil, fmt.Errorf("%w: zero mipmap count", ErrTruncated)
	}

	if f.minor >= 3 {
		if err := f.parseResources(); err != nil {
			return nil, err
		}
	} else {
		// Legacy layout: thumbnail directly after the header, then the
		// high-resolution lump.
		f.lowResOffset = int(f.headerSize)
		f.highResOffset = f.lowResOffset + f.lowResSize()
	}

	if f.highResOffset <= 0 || f.highResOffset > len(f.raw) {
		return nil, ErrNoImageData
	}
	if f.highResOffset+f.highResSize() > len(f.raw) {
		return nil, fmt.Errorf("%w: high-res data extends past end of file", ErrTruncated)
	}

	return f, nil
}

// LoadFile parses a VTF container from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading VTF file: %w", err)
	}
	return Load(data)
}

// parseResources reads the 7.3+ resource dictionary.
func (f *File) parseResources() error {
	if len(f.raw) < 80 {
		return fmt.Errorf("%w: missing resource dictionary", ErrTruncated)
	}
	count := int(binary.LittleEndian.Uint32(f.raw[68:]))
	if len(f.raw) < 80+count*8 {
		return fmt.Errorf("%w: resource dictionary exceeds file", ErrTruncated)
	}

	f.resources = make([]resource, 0, count)
	for i := 0; i < count; i++ {
		entry := f.raw[80+i*8:]
		res := resource{
			Type:   uint32(entry[0]) | uint32(entry[1])<<8 | uint32(entry[2])<<16,
			Flags:  entry[3],
			Offset: binary.LittleEndian.Uint32(entry[4:]),
		}
		f.resources = append(f.resources, res)

		switch res.Type {
		case ResourceLowResImage:
			f.lowResOffset = int(res.Offset)
		case ResourceHighResImage:
			f.highResOffset = int(res.Offset)
		}
	}
	return nil
}

// Save writes the container to disk.
func (f *File) Save(path string) error {
	if err := os.WriteFile(path, f.raw, 0644); err != nil {
		return fmt.Errorf("writing VTF file: %w", err)
	}
	return nil
}

// SaveTo writes the container to a writer.
func (f *File) SaveTo(w io.Writer) error {
	_, err := w.Write(f.raw)
	return err
}

// Basic accessors.

func (f *File) Width() int            { return int(f.width) }
func (f *File) Height() int           { return int(f.height) }
func (f *File) Depth() int            { return int(f.depth) }
func (f *File) FrameCount() int       { return int(f.frames) }
func (f *File) MipmapCount() int      { return int(f.mipCount) }
func (f *File) Format() ImageFormat   { return f.format }
func (f *File) MajorVersion() int     { return int(f.major) }
func (f *File) MinorVersion() int     { return int(f.minor) }
func (f *File) Size() int             { return len(f.raw) }
func (f *File) StartFrame() int       { return int(f.firstFrame) }
func (f *File) Flags() TextureFlags   { return f.flags }
func (f *File) BumpmapScale() float32 { return f.bumpScale }

// FaceCount returns the number of cubemap faces: 1 for plain textures, 6 for
// envmaps, 7 for 7.1-7.4 envmaps carrying the legacy spheremap face.
func (f *File) FaceCount() int {
	if f.flags&FlagEnvmap == 0 {
		return 1
	}
	if f.minor >= 1 && f.minor <= 4 && f.firstFrame == 0xFFFF {
		return 7
	}
	return 6
}

// Reflectivity returns the precomputed reflectivity triple.
func (f *File) Reflectivity() (x, y, z float32) {
	return f.reflectivity[0], f.reflectivity[1], f.reflectivity[2]
}

// Flag reports whether a single flag bit is set.
func (f *File) Flag(bit TextureFlags) bool { return f.flags&bit != 0 }

// SetFlag sets or clears one flag bit, patching the retained container bytes
// so a subsequent Save persists the change.
func (f *File) SetFlag(bit TextureFlags, on bool) {
	if on {
		f.flags |= bit
	} else {
		f.flags &^= bit
	}
	binary.LittleEndian.PutUint32(f.raw[offFlags:], uint32(f.flags))
}

// SetStartFrame sets the default animation frame stored in the header.
func (f *File) SetStartFrame(frame int) {
	f.firstFrame = uint16(frame)
	binary.LittleEndian.PutUint16(f.raw[offFirstFrame:], f.firstFrame)
}

// lowResSize returns the byte size of the thumbnail image, zero when absent.
func (f *File) lowResSize() int {
	if f.lowResFormat == FormatNone || f.lowResWidth == 0 || f.lowResHeight == 0 {
		return 0
	}
	return imageSize(int(f.lowResWidth), int(f.lowResHeight), 1, f.lowResFormat)
}

// highResSize returns the byte size of the whole high-resolution lump.
func (f *File) highResSize() int {
	return highResSize(int(f.width), int(f.height), int(f.depth),
		int(f.mipCount), int(f.frames), f.FaceCount(), f.format)
}

// Data returns the pixel bytes of one slice of one mip level. All indices
// are zero-based; out-of-range indices fail with ErrRangeExceeded.
func (f *File) Data(frame, face, slice, mip int) ([]byte, error) {
	if frame < 0 || frame >= f.FrameCount() ||
		face < 0 || face >= f.FaceCount() ||
		mip < 0 || mip >= f.MipmapCount() {
		return nil, fmt.Errorf("%w: frame %d face %d slice %d mip %d",
			ErrRangeExceeded, frame, face, slice, mip)
	}
	_, _, mipDepth := MipmapDimensions(int(f.width), int(f.height), int(f.depth), mip)
	if slice < 0 || slice >= mipDepth {
		return nil, fmt.Errorf("%w: slice %d of %d", ErrRangeExceeded, slice, mipDepth)
	}

	offset := f.highResOffset + dataOffset(frame, face, slice, mip,
		int(f.mipCount), int(f.frames), f.FaceCount(),
		int(f.width), int(f.height), int(f.depth), f.format)
	size := MipmapSize(int(f.width), int(f.height), 1, mip, f.format)
	if offset+size > len(f.raw) {
		return nil, fmt.Errorf("%w: data extends past end of file", ErrTruncated)
	}
	return f.raw[offset : offset+size], nil
}

// LowResData returns the thumbnail pixel bytes, or nil when the container
// has no thumbnail.
func (f *File) LowResData() []byte {
	size := f.lowResSize()
	if size == 0 || f.lowResOffset <= 0 || f.lowResOffset+size > len(f.raw) {
		return nil
	}
	return f.raw[f.lowResOffset : f.lowResOffset+size]
}

// LowResFormat returns the thumbnail format, FormatNone when absent.
func (f *File) LowResFormat() ImageFormat { return f.lowResFormat }

// LowResDimensions returns the thumbnail dimensions.
func (f *File) LowResDimensions() (int, int) {
	return int(f.lowResWidth), int(f.lowResHeight)
}

// ResourceCount returns the number of dictionary entries. Containers before
// version 7.3 have no dictionary and report zero.
func (f *File) ResourceCount() int { return len(f.resources) }

// ResourceType returns the type code of the i-th dictionary entry.
func (f *File) ResourceType(i int) (uint32, error) {
	if i < 0 || i >= len(f.resources) {
		return 0, fmt.Errorf("%w: resource %d of %d", ErrRangeExceeded, i, len(f.resources))
	}
	return f.resources[i].Type, nil
}

// ResourceData returns the payload bytes of a resource by type code. For
// entries flagged as having no data the 4-byte inline value is returned; for
// the image resources the respective pixel lumps are returned; everything
// else is a uint32-length-prefixed body.
func (f *File) ResourceData(typ uint32) ([]byte, error) {
	for _, res := range f.resources {
		if res.Type != typ {
			continue
		}
		if res.Flags&resourceHasNoData != 0 {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], res.Offset)
			return buf[:], nil
		}
		switch res.Type {
		case ResourceLowResImage:
			return f.LowResData(), nil
		case ResourceHighResImage:
			end := f.highResOffset + f.highResSize()
			return f.raw[f.highResOffset:end], nil
		}
		offset := int(res.Offset)
		if offset+4 > len(f.raw) {
			return nil, fmt.Errorf("%w: resource body offset", ErrTruncated)
		}
		size := int(binary.LittleEndian.Uint32(f.raw[offset:]))
		if offset+4+size > len(f.raw) {
			return nil, fmt.Errorf("%w: resource body", ErrTruncated)
		}
		return f.raw[offset+4 : offset+4+size], nil
	}
	return nil, fmt.Errorf("%w: 0x%X", ErrNoSuchResource, typ)
}

// ResourceName returns a human-readable name for a resource type code.
func ResourceName(typ uint32) string {
	switch typ {
	case ResourceLowResImage:
		return "Low-res Image (Thumbnail)"
	case ResourceHighResImage:
		return "High-res Image"
	case ResourceSheet:
		return "Sprite Sheet Data"
	case ResourceCRC:
		return "CRC Data"
	case ResourceLODSettings:
		return "Texture LOD Settings"
	case ResourceSettingsEx:
		return "Texture Settings Extended"
	case ResourceKeyValueData:
		return "Keyvalue Data"
	default:
		return fmt.Sprintf("Unknown (0x%X)", typ)
	}
}
