// SPDX-License-Identifier: Unlicense OR MIT

package hw

import (
	"github.com/xrgo/engine/gpu/gl"
)

// Caps is the capability record detected at device creation.
type Caps struct {
	// TargetFormat is the color format of render targets.
	TargetFormat Format
	// DepthStencilFormat is the format of depth-stencil targets.
	DepthStencilFormat Format
	Features           Features
	// Texture unit limits. They are reported for diagnostics and
	// not enforced.
	MaxVertexTextureUnits   int
	MaxCombinedTextureUnits int
}

type Features uint

const (
	FeatureSeparateShaderObjects Features = 1 << iota
	FeatureShaderBinary
	FeatureCompute
)

// Format is a render target format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatA8R8G8B8
	FormatD24S8
)

// Version describes the driver behind the primary context.
type Version struct {
	Major, Minor int
	// String is the VERSION string.
	String string
	// ShadingLanguage is the SHADING_LANGUAGE_VERSION string.
	ShadingLanguage string
	// Adapter is the RENDERER string.
	Adapter string
	Vendor  string
}

func (f Features) Has(feats Features) bool {
	return f&feats == feats
}

func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "Unknown"
	case FormatA8R8G8B8:
		return "A8R8G8B8"
	case FormatD24S8:
		return "D24S8"
	default:
		panic("unknown Format value")
	}
}

// detectCaps queries the current context. Target and depth formats
// are fixed rather than negotiated, and compute shaders are always
// reported unsupported.
func detectCaps(f gl.Functions, exts []string) (Caps, Version) {
	ver := Version{
		Major:           f.GetInteger(gl.MAJOR_VERSION),
		Minor:           f.GetInteger(gl.MINOR_VERSION),
		String:          f.GetString(gl.VERSION),
		ShadingLanguage: f.GetString(gl.SHADING_LANGUAGE_VERSION),
		Adapter:         f.GetString(gl.RENDERER),
		Vendor:          f.GetString(gl.VENDOR),
	}
	if ver.Major == 0 {
		// MAJOR_VERSION is a GL 3.0 query; older drivers only have
		// the version string.
		if v, err := gl.ParseGLVersion(ver.String); err == nil {
			ver.Major, ver.Minor = v[0], v[1]
		}
	}
	caps := Caps{
		TargetFormat:            FormatA8R8G8B8,
		DepthStencilFormat:      FormatD24S8,
		MaxVertexTextureUnits:   f.GetInteger(gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS),
		MaxCombinedTextureUnits: f.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS),
	}
	core41 := gl.AtLeast([2]int{ver.Major, ver.Minor}, 4, 1)
	if core41 || gl.HasExtension(exts, "GL_ARB_separate_shader_objects") {
		caps.Features |= FeatureSeparateShaderObjects
	}
	if core41 || gl.HasExtension(exts, "GL_ARB_get_program_binary") {
		caps.Features |= FeatureShaderBinary
	}
	return caps, ver
}
