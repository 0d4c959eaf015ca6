// SPDX-License-Identifier: Unlicense OR MIT

// Package gl describes the subset of OpenGL used by the graphics
// device: framebuffer management, presentation blits, state queries
// and the KHR_debug entry points.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	COLOR_ATTACHMENT0                = 0x8ce0
	COLOR_BUFFER_BIT                 = 0x4000
	CLAMP_TO_EDGE                    = 0x812f
	DEPTH_BUFFER_BIT                 = 0x100
	DRAW_FRAMEBUFFER                 = 0x8ca9
	EXTENSIONS                       = 0x1f03
	FALSE                            = 0
	FRAMEBUFFER                      = 0x8d40
	FRAMEBUFFER_BINDING              = 0x8ca6
	FRAMEBUFFER_COMPLETE             = 0x8cd5
	LINEAR                           = 0x2601
	MAJOR_VERSION                    = 0x821b
	MAX_COMBINED_TEXTURE_IMAGE_UNITS = 0x8b4d
	MAX_TEXTURE_SIZE                 = 0xd33
	MAX_VERTEX_TEXTURE_IMAGE_UNITS   = 0x8b4c
	MINOR_VERSION                    = 0x821c
	NEAREST                          = 0x2600
	NO_ERROR                         = 0x0
	NUM_EXTENSIONS                   = 0x821d
	READ_FRAMEBUFFER                 = 0x8ca8
	RENDERER                         = 0x1f01
	RGBA                             = 0x1908
	RGBA8                            = 0x8058
	SHADING_LANGUAGE_VERSION         = 0x8b8c
	STENCIL_BUFFER_BIT               = 0x400
	TEXTURE_2D                       = 0xde1
	TEXTURE_MAG_FILTER               = 0x2800
	TEXTURE_MIN_FILTER               = 0x2801
	TEXTURE_WRAP_S                   = 0x2802
	TEXTURE_WRAP_T                   = 0x2803
	TRUE                             = 1
	UNSIGNED_BYTE                    = 0x1401
	VENDOR                           = 0x1f00
	VERSION                          = 0x1f02

	// KHR_debug
	DEBUG_OUTPUT                = 0x92e0
	DEBUG_OUTPUT_SYNCHRONOUS    = 0x8242
	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_NOTIFICATION = 0x826b
	DEBUG_SOURCE_API            = 0x8246
	DEBUG_SOURCE_APPLICATION    = 0x824a
	DEBUG_TYPE_ERROR            = 0x824c
	DEBUG_TYPE_PERFORMANCE      = 0x8250
)
