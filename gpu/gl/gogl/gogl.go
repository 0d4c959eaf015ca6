// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the
// github.com/go-gl/gl core profile bindings.
package gogl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"

	xgl "github.com/xrgo/engine/gpu/gl"
)

// Functions forwards to the process wide go-gl function table.
type Functions struct {
	// debug keeps the installed callback reachable.
	debug xgl.DebugProc
}

var _ xgl.Functions = (*Functions)(nil)

// New loads the OpenGL entry points through getProcAddr. A context
// must be current on the calling thread.
func New(getProcAddr func(name string) unsafe.Pointer) (*Functions, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (f *Functions) BindFramebuffer(target xgl.Enum, fb xgl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindTexture(target xgl.Enum, t xgl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask xgl.Enum, filter xgl.Enum) {
	gl.BlitFramebuffer(
		int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		uint32(mask), uint32(filter))
}

func (f *Functions) CheckFramebufferStatus(target xgl.Enum) xgl.Enum {
	return xgl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) Clear(mask xgl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CreateFramebuffer() xgl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return xgl.Framebuffer{V: uint(fb)}
}

func (f *Functions) CreateTexture() xgl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return xgl.Texture{V: uint(t)}
}

func (f *Functions) DebugMessageCallback(cb xgl.DebugProc) {
	f.debug = cb
	if cb == nil {
		// go-gl keeps its C trampoline installed, so the driver is
		// silenced and the Go side drops stray messages.
		gl.Disable(gl.DEBUG_OUTPUT)
	}
	gl.DebugMessageCallback(debugProc(cb), nil)
}

// debugProc adapts cb to the go-gl callback type. A nil cb drops
// every message.
func debugProc(cb xgl.DebugProc) gl.DebugProc {
	return func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if cb != nil {
			cb(xgl.Enum(source), xgl.Enum(gltype), uint(id), xgl.Enum(severity), message)
		}
	}
}

func (f *Functions) DeleteFramebuffer(v xgl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffers(1, &fb)
}

func (f *Functions) DeleteTexture(v xgl.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (f *Functions) Disable(cap xgl.Enum) {
	gl.Disable(uint32(cap))
}

func (f *Functions) Enable(cap xgl.Enum) {
	gl.Enable(uint32(cap))
}

func (f *Functions) Finish() {
	gl.Finish()
}

func (f *Functions) Flush() {
	gl.Flush()
}

func (f *Functions) GetBinding(pname xgl.Enum) xgl.Object {
	var o int32
	gl.GetIntegerv(uint32(pname), &o)
	return xgl.Object{V: uint(o)}
}

func (f *Functions) GetError() xgl.Enum {
	return xgl.Enum(gl.GetError())
}

func (f *Functions) GetInteger(pname xgl.Enum) int {
	var p [100]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *Functions) GetString(pname xgl.Enum) string {
	switch {
	case pname == xgl.EXTENSIONS:
		// OpenGL 3 core profile doesn't support glGetString(GL_EXTENSIONS).
		// Use glGetStringi(GL_EXTENSIONS, <index>).
		var exts []string
		nexts := f.GetInteger(xgl.NUM_EXTENSIONS)
		for i := 0; i < nexts; i++ {
			ext := gl.GetStringi(gl.EXTENSIONS, uint32(i))
			exts = append(exts, gl.GoStr(ext))
		}
		return strings.Join(exts, " ")
	default:
		return gl.GoStr(gl.GetString(uint32(pname)))
	}
}

func (f *Functions) PopDebugGroup() {
	gl.PopDebugGroup()
}

func (f *Functions) PushDebugGroup(source xgl.Enum, id uint, message string) {
	// A negative length makes the driver read up to the terminator.
	gl.PushDebugGroup(uint32(source), uint32(id), -1, gl.Str(message+"\x00"))
}

func (f *Functions) TexImage2D(target xgl.Enum, level int, internalFormat int, width, height int, format, ty xgl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
}

func (f *Functions) TexParameteri(target, pname xgl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
