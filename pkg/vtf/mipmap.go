package vtf

// MipmapDimensions returns the dimensions of a given mip level for a texture
// with the given base dimensions. Each level halves every axis, clamped to 1.
func MipmapDimensions(width, height, depth, mip int) (int, int, int) {
	w := width >> uint(mip)
	h := height >> uint(mip)
	d := depth >> uint(mip)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if d < 1 {
		d = 1
	}
	return w, h, d
}

// MipmapSize returns the byte size of one frame-face of the given mip level.
func MipmapSize(width, height, depth, mip int, format ImageFormat) int {
	w, h, d := MipmapDimensions(width, height, depth, mip)
	return imageSize(w, h, d, format)
}

// imageSize returns the byte size of a single image of the given dimensions.
// Block-compressed formats round dimensions up to whole 4x4 blocks.
func imageSize(width, height, depth int, format ImageFormat) int {
	info := FormatInfo(format)
	if info.Compressed {
		blocksWide := (width + 3) / 4
		blocksHigh := (height + 3) / 4
		return blocksWide * blocksHigh * info.BlockSize * depth
	}
	return width * height * depth * info.BytesPerPixel
}

// dataOffset returns the byte offset of one slice inside a high-resolution
// image lump. Mips are stored smallest to largest; within a mip the order is
// frame, then face, then slice.
func dataOffset(frame, face, slice, mip, mipCount, frames, faces int, width, height, depth int, format ImageFormat) int {
	offset := 0
	for i := mipCount - 1; i > mip; i-- {
		offset += MipmapSize(width, height, depth, i, format) * frames * faces
	}

	volumeSize := MipmapSize(width, height, depth, mip, format)
	sliceSize := MipmapSize(width, height, 1, mip, format)

	offset += volumeSize * (frame*faces + face)
	offset += sliceSize * slice
	return offset
}

// highResSize returns the total byte size of the high-resolution image lump.
func highResSize(width, height, depth, mipCount, frames, faces int, format ImageFormat) int {
	total := 0
	for i := 0; i < mipCount; i++ {
		total += MipmapSize(width, height, depth, i, format) * frames * faces
	}
	return total
}
