package viewer

import "github.com/Faultbox/vtfview/pkg/vtf"

// FlagDescriptor pairs a texture flag bit with its user-facing label.
type FlagDescriptor struct {
	Bit   vtf.TextureFlags
	Label string
}

// FlagTable lists every editable texture flag in presentation order. The
// order is user-visible and stable; deprecated bits stay in the table with a
// suffixed label.
var FlagTable = []FlagDescriptor{
	{vtf.FlagPointSample, "Point Sample"},
	{vtf.FlagTrilinear, "Trilinear"},
	{vtf.FlagClampS, "Clamp S"},
	{vtf.FlagClampT, "Clamp T"},
	{vtf.FlagClampU, "Clamp U"},
	{vtf.FlagAnisotropic, "Anisotropic"},
	{vtf.FlagHintDXT5, "Hint DXT5"},
	{vtf.FlagSRGB, "sRGB"},
	{vtf.FlagDeprecatedNoCompress, "Nocompress (Deprecated)"},
	{vtf.FlagNormal, "Normal"},
	{vtf.FlagNoMip, "No MIP"},
	{vtf.FlagNoLOD, "No LOD"},
	{vtf.FlagMinMip, "Min Mip"},
	{vtf.FlagProcedural, "Procedural"},
	{vtf.FlagOneBitAlpha, "One-bit Alpha"},
	{vtf.FlagEightBitAlpha, "Eight-bit Alpha"},
	{vtf.FlagEnvmap, "Envmap"},
	{vtf.FlagRenderTarget, "Render Target"},
	{vtf.FlagDepthRenderTarget, "Depth Render Target"},
	{vtf.FlagNoDebugOverride, "No Debug Override"},
	{vtf.FlagSingleCopy, "Single Copy"},
	{vtf.FlagDeprecatedOneOverMipLevelInAlpha, "One Over Mip Level Linear Alpha (Deprecated)"},
	{vtf.FlagDeprecatedPremultColorByOneOverMipLevel, "Pre-multiply Colors by One Over Mip Level (Deprecated)"},
	{vtf.FlagDeprecatedNormalToDuDv, "Normal To DuDv"},
	{vtf.FlagDeprecatedAlphaTestMipGeneration, "Alpha Test Mip Generation (Deprecated)"},
	{vtf.FlagNoDepthBuffer, "No Depth Buffer"},
	{vtf.FlagDeprecatedNiceFiltered, "Nice Filtered (Deprecated)"},
	{vtf.FlagVertexTexture, "Vertex Texture"},
	{vtf.FlagSSBump, "SSBump"},
	{vtf.FlagDeprecatedUnfilterableOK, "Unfilterable OK (Deprecated)"},
	{vtf.FlagBorder, "Border"},
	{vtf.FlagDeprecatedSpecvarRed, "Specvar Red (Deprecated)"},
	{vtf.FlagDeprecatedSpecvarAlpha, "Specvar Alpha (Deprecated)"},
}
