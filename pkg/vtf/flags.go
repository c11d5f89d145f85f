package vtf

// TextureFlags is the header flag bitset.
type TextureFlags uint32

// Texture flags, matching the on-disk header values. Deprecated bits share
// values with their replacements where the engine reused them.
const (
	FlagPointSample                             TextureFlags = 0x00000001
	FlagTrilinear                               TextureFlags = 0x00000002
	FlagClampS                                  TextureFlags = 0x00000004
	FlagClampT                                  TextureFlags = 0x00000008
	FlagAnisotropic                             TextureFlags = 0x00000010
	FlagHintDXT5                                TextureFlags = 0x00000020
	FlagSRGB                                    TextureFlags = 0x00000040
	FlagDeprecatedNoCompress                    TextureFlags = 0x00000040
	FlagNormal                                  TextureFlags = 0x00000080
	FlagNoMip                                   TextureFlags = 0x00000100
	FlagNoLOD                                   TextureFlags = 0x00000200
	FlagMinMip                                  TextureFlags = 0x00000400
	FlagProcedural                              TextureFlags = 0x00000800
	FlagOneBitAlpha                             TextureFlags = 0x00001000
	FlagEightBitAlpha                           TextureFlags = 0x00002000
	FlagEnvmap                                  TextureFlags = 0x00004000
	FlagRenderTarget                            TextureFlags = 0x00008000
	FlagDepthRenderTarget                       TextureFlags = 0x00010000
	FlagNoDebugOverride                         TextureFlags = 0x00020000
	FlagSingleCopy                              TextureFlags = 0x00040000
	FlagDeprecatedOneOverMipLevelInAlpha        TextureFlags = 0x00080000
	FlagDeprecatedPremultColorByOneOverMipLevel TextureFlags = 0x00100000
	FlagDeprecatedNormalToDuDv                  TextureFlags = 0x00200000
	FlagDeprecatedAlphaTestMipGeneration        TextureFlags = 0x00400000
	FlagNoDepthBuffer                           TextureFlags = 0x00800000
	FlagDeprecatedNiceFiltered                  TextureFlags = 0x01000000
	FlagClampU                                  TextureFlags = 0x02000000
	FlagVertexTexture                           TextureFlags = 0x04000000
	FlagSSBump                                  TextureFlags = 0x08000000
	FlagDeprecatedUnfilterableOK                TextureFlags = 0x10000000
	FlagBorder                                  TextureFlags = 0x20000000
	FlagDeprecatedSpecvarRed                    TextureFlags = 0x40000000
	FlagDeprecatedSpecvarAlpha                  TextureFlags = 0x80000000
)
