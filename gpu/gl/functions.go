// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of OpenGL entry points bound to the
// current context. Implementations forward to the native driver;
// every call must be made from the thread holding the context.
type Functions interface {
	BindFramebuffer(target Enum, fb Framebuffer)
	BindTexture(target Enum, t Texture)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask Enum, filter Enum)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CreateFramebuffer() Framebuffer
	CreateTexture() Texture
	// DebugMessageCallback installs cb as the KHR_debug message
	// callback. A nil cb disables DEBUG_OUTPUT.
	DebugMessageCallback(cb DebugProc)
	DeleteFramebuffer(fb Framebuffer)
	DeleteTexture(t Texture)
	Disable(cap Enum)
	Enable(cap Enum)
	Finish()
	Flush()
	GetBinding(pname Enum) Object
	GetError() Enum
	GetInteger(pname Enum) int
	// GetString returns the string value of pname. For EXTENSIONS
	// the space separated extension list is returned, also on core
	// profiles where glGetString(GL_EXTENSIONS) is unavailable.
	GetString(pname Enum) string
	PopDebugGroup()
	PushDebugGroup(source Enum, id uint, message string)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	Viewport(x, y, width, height int)
}

// DebugProc receives KHR_debug messages. The callback runs
// synchronously on the thread issuing the offending command when
// DEBUG_OUTPUT_SYNCHRONOUS is enabled.
type DebugProc func(source, typ Enum, id uint, severity Enum, message string)
