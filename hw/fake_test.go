// SPDX-License-Identifier: Unlicense OR MIT

package hw

import (
	"errors"
	"strings"
	"sync"

	"github.com/xrgo/engine/gpu/gl"
)

type fakeWindow struct {
	name string
}

type fakeContext struct {
	id     int
	window Window
	// shared is the context whose objects this one shares.
	shared Context
}

type fakePlatform struct {
	mu sync.Mutex

	funcs *fakeFunctions

	attrs    map[Attribute]int
	contexts []*fakeContext
	current  Context
	deleted  []Context

	helperWindows    []Window
	destroyedWindows []Window

	mode     DisplayMode
	setModes []DisplayMode

	intervals        []int
	adaptiveVSync    bool
	swaps            int
	restored         int
	minimized        int
	makeCurrentCalls int

	createContextErr error
	makeCurrentErr   error
	helperWindowErr  error
	helperContextErr error
	functionsErr     error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		funcs:         newFakeFunctions(),
		attrs:         make(map[Attribute]int),
		mode:          DisplayMode{Format: PixelFormatRGB888, Width: 1920, Height: 1080, RefreshRate: 60},
		adaptiveVSync: true,
	}
}

func (p *fakePlatform) SetAttribute(a Attribute, v int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attrs[a] = v
	return nil
}

func (p *fakePlatform) DisplayMode(w Window) (DisplayMode, error) {
	return p.mode, nil
}

func (p *fakePlatform) SetDisplayMode(w Window, m DisplayMode) error {
	p.setModes = append(p.setModes, m)
	p.mode = m
	return nil
}

func (p *fakePlatform) CreateContext(w Window) (Context, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.contexts) == 0 && p.createContextErr != nil {
		return nil, p.createContextErr
	}
	if len(p.contexts) == 1 && p.helperContextErr != nil {
		return nil, p.helperContextErr
	}
	c := &fakeContext{id: len(p.contexts) + 1, window: w}
	if p.attrs[AttrShareWithCurrentContext] != 0 {
		c.shared = p.current
	}
	p.contexts = append(p.contexts, c)
	return c, nil
}

func (p *fakePlatform) DeleteContext(c Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, c)
}

func (p *fakePlatform) MakeCurrent(w Window, c Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.makeCurrentCalls++
	if p.makeCurrentErr != nil && c != nil {
		return p.makeCurrentErr
	}
	if c == nil {
		p.current = nil
		return nil
	}
	if fc := c.(*fakeContext); fc.window != w {
		return errors.New("context bound to a different window")
	}
	p.current = c
	return nil
}

func (p *fakePlatform) CurrentContext() Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *fakePlatform) CreateHelperWindow() (Window, error) {
	if p.helperWindowErr != nil {
		return nil, p.helperWindowErr
	}
	w := &fakeWindow{name: "helper"}
	p.helperWindows = append(p.helperWindows, w)
	return w, nil
}

func (p *fakePlatform) DestroyWindow(w Window) {
	p.destroyedWindows = append(p.destroyedWindows, w)
}

func (p *fakePlatform) SetSwapInterval(interval int) error {
	p.intervals = append(p.intervals, interval)
	if interval < 0 && !p.adaptiveVSync {
		return errors.New("adaptive vsync not supported")
	}
	return nil
}

func (p *fakePlatform) Swap(w Window) {
	p.swaps++
}

func (p *fakePlatform) RestoreWindow(w Window) {
	p.restored++
}

func (p *fakePlatform) MinimizeWindow(w Window) {
	p.minimized++
}

func (p *fakePlatform) Functions() (gl.Functions, error) {
	if p.functionsErr != nil {
		return nil, p.functionsErr
	}
	return p.funcs, nil
}

type blit struct {
	src, dst     [4]int
	mask, filter gl.Enum
	read, draw   gl.Framebuffer
}

type fakeFunctions struct {
	mu sync.Mutex

	exts    []string
	ints    map[gl.Enum]int
	strs    map[gl.Enum]string
	enabled map[gl.Enum]bool

	nextObj  uint
	bound    map[gl.Enum]gl.Framebuffer
	created  []gl.Framebuffer
	deleted  []gl.Framebuffer
	textures []gl.Texture
	blits    []blit
	groups   []string
	depth    int
	finishes int
	debug    gl.DebugProc
}

func newFakeFunctions() *fakeFunctions {
	return &fakeFunctions{
		exts: []string{"GL_ARB_get_program_binary", "GL_KHR_debug"},
		ints: map[gl.Enum]int{
			gl.MAJOR_VERSION:                    4,
			gl.MINOR_VERSION:                    6,
			gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS:   32,
			gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS: 192,
		},
		strs: map[gl.Enum]string{
			gl.VENDOR:                   "Fake Vendor",
			gl.RENDERER:                 "Fake Adapter",
			gl.VERSION:                  "4.6.0 Fake 1.0",
			gl.SHADING_LANGUAGE_VERSION: "4.60 Fake",
		},
		enabled: make(map[gl.Enum]bool),
		bound:   make(map[gl.Enum]gl.Framebuffer),
	}
}

func (f *fakeFunctions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if target == gl.FRAMEBUFFER {
		f.bound[gl.READ_FRAMEBUFFER] = fb
		f.bound[gl.DRAW_FRAMEBUFFER] = fb
	}
	f.bound[target] = fb
}

func (f *fakeFunctions) BindTexture(target gl.Enum, t gl.Texture) {}

func (f *fakeFunctions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask gl.Enum, filter gl.Enum) {
	f.blits = append(f.blits, blit{
		src:    [4]int{srcX0, srcY0, srcX1, srcY1},
		dst:    [4]int{dstX0, dstY0, dstX1, dstY1},
		mask:   mask,
		filter: filter,
		read:   f.bound[gl.READ_FRAMEBUFFER],
		draw:   f.bound[gl.DRAW_FRAMEBUFFER],
	})
}

func (f *fakeFunctions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *fakeFunctions) Clear(mask gl.Enum) {}

func (f *fakeFunctions) ClearColor(red, green, blue, alpha float32) {}

func (f *fakeFunctions) CreateFramebuffer() gl.Framebuffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextObj++
	fb := gl.Framebuffer{V: f.nextObj}
	f.created = append(f.created, fb)
	return fb
}

func (f *fakeFunctions) CreateTexture() gl.Texture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextObj++
	t := gl.Texture{V: f.nextObj}
	f.textures = append(f.textures, t)
	return t
}

func (f *fakeFunctions) DebugMessageCallback(cb gl.DebugProc) {
	f.debug = cb
}

func (f *fakeFunctions) DeleteFramebuffer(fb gl.Framebuffer) {
	f.deleted = append(f.deleted, fb)
}

func (f *fakeFunctions) DeleteTexture(t gl.Texture) {}

func (f *fakeFunctions) Disable(cap gl.Enum) {
	f.enabled[cap] = false
}

func (f *fakeFunctions) Enable(cap gl.Enum) {
	f.enabled[cap] = true
}

func (f *fakeFunctions) Finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finishes++
}

func (f *fakeFunctions) Flush() {}

func (f *fakeFunctions) GetBinding(pname gl.Enum) gl.Object {
	if pname == gl.FRAMEBUFFER_BINDING {
		return gl.Object{V: f.bound[gl.DRAW_FRAMEBUFFER].V}
	}
	return gl.Object{}
}

func (f *fakeFunctions) GetError() gl.Enum {
	return gl.NO_ERROR
}

func (f *fakeFunctions) GetInteger(pname gl.Enum) int {
	return f.ints[pname]
}

func (f *fakeFunctions) GetString(pname gl.Enum) string {
	if pname == gl.EXTENSIONS {
		return strings.Join(f.exts, " ")
	}
	return f.strs[pname]
}

func (f *fakeFunctions) PopDebugGroup() {
	f.depth--
}

func (f *fakeFunctions) PushDebugGroup(source gl.Enum, id uint, message string) {
	f.groups = append(f.groups, message)
	f.depth++
}

func (f *fakeFunctions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
}

func (f *fakeFunctions) TexParameteri(target, pname gl.Enum, param int) {}

func (f *fakeFunctions) Viewport(x, y, width, height int) {}

type fakeNotifier struct {
	device    Observer
	observers int
}

func (n *fakeNotifier) AttachDevice(o Observer) bool {
	if n.device != nil {
		return false
	}
	n.device = o
	n.observers++
	return true
}

func (n *fakeNotifier) DetachDevice(o Observer) {
	if n.device == o {
		n.device = nil
		n.observers--
	}
}
