// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"

	"github.com/xrgo/engine/gpu/gl"
	"github.com/xrgo/engine/hw"
)

type fakeWindow struct {
	opts WindowOptions
}

type fakeContext struct {
	w hw.Window
}

// fakeDriver delivers one queued batch of events per PollEvents
// call. Once the queue is empty it reports a QuitEvent.
type fakeDriver struct {
	batches [][]Event
	polls   int

	windows   []*fakeWindow
	destroyed []hw.Window
	current   hw.Context
	restored  int
	minimized int
	swaps     int

	terminated bool
	windowErr  error

	funcs *nopFunctions
}

func newFakeDriver(batches ...[]Event) *fakeDriver {
	return &fakeDriver{batches: batches, funcs: new(nopFunctions)}
}

func (d *fakeDriver) CreateWindow(opts WindowOptions) (hw.Window, error) {
	if d.windowErr != nil {
		return nil, d.windowErr
	}
	w := &fakeWindow{opts: opts}
	d.windows = append(d.windows, w)
	return w, nil
}

func (d *fakeDriver) PollEvents(f func(e Event)) {
	d.polls++
	if len(d.batches) == 0 {
		f(QuitEvent{})
		return
	}
	batch := d.batches[0]
	d.batches = d.batches[1:]
	for _, e := range batch {
		f(e)
	}
}

func (d *fakeDriver) Terminate() { d.terminated = true }

func (d *fakeDriver) SetAttribute(a hw.Attribute, value int) error { return nil }

func (d *fakeDriver) DisplayMode(w hw.Window) (hw.DisplayMode, error) {
	return hw.DisplayMode{}, errors.New("no display")
}

func (d *fakeDriver) SetDisplayMode(w hw.Window, m hw.DisplayMode) error { return nil }

func (d *fakeDriver) CreateContext(w hw.Window) (hw.Context, error) {
	return &fakeContext{w: w}, nil
}

func (d *fakeDriver) DeleteContext(c hw.Context) {}

func (d *fakeDriver) MakeCurrent(w hw.Window, c hw.Context) error {
	d.current = c
	return nil
}

func (d *fakeDriver) CurrentContext() hw.Context { return d.current }

func (d *fakeDriver) CreateHelperWindow() (hw.Window, error) {
	return &fakeWindow{opts: WindowOptions{Width: 1, Height: 1, Flags: hw.FlagHidden}}, nil
}

func (d *fakeDriver) DestroyWindow(w hw.Window) { d.destroyed = append(d.destroyed, w) }

func (d *fakeDriver) SetSwapInterval(interval int) error { return nil }

func (d *fakeDriver) Swap(w hw.Window) { d.swaps++ }

func (d *fakeDriver) RestoreWindow(w hw.Window) { d.restored++ }

func (d *fakeDriver) MinimizeWindow(w hw.Window) { d.minimized++ }

func (d *fakeDriver) Functions() (gl.Functions, error) { return d.funcs, nil }

// nopFunctions counts the calls the engine tests look at.
type nopFunctions struct {
	framebuffers int
	blits        int
	lastBlit     [2]int
}

func (f *nopFunctions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {}
func (f *nopFunctions) BindTexture(target gl.Enum, t gl.Texture)          {}
func (f *nopFunctions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask gl.Enum, filter gl.Enum) {
	f.blits++
	f.lastBlit = [2]int{srcX1, srcY1}
}
func (f *nopFunctions) CheckFramebufferStatus(target gl.Enum) gl.Enum { return gl.FRAMEBUFFER_COMPLETE }
func (f *nopFunctions) Clear(mask gl.Enum)                            {}
func (f *nopFunctions) ClearColor(red, green, blue, alpha float32)    {}
func (f *nopFunctions) CreateFramebuffer() gl.Framebuffer {
	f.framebuffers++
	return gl.Framebuffer{V: uint(f.framebuffers)}
}
func (f *nopFunctions) CreateTexture() gl.Texture                   { return gl.Texture{V: 1} }
func (f *nopFunctions) DebugMessageCallback(cb gl.DebugProc)        {}
func (f *nopFunctions) DeleteFramebuffer(fb gl.Framebuffer)         {}
func (f *nopFunctions) DeleteTexture(t gl.Texture)                  {}
func (f *nopFunctions) Disable(cap gl.Enum)                         {}
func (f *nopFunctions) Enable(cap gl.Enum)                          {}
func (f *nopFunctions) Finish()                                     {}
func (f *nopFunctions) Flush()                                      {}
func (f *nopFunctions) GetBinding(pname gl.Enum) gl.Object          { return gl.Object{} }
func (f *nopFunctions) GetError() gl.Enum                           { return gl.NO_ERROR }
func (f *nopFunctions) GetInteger(pname gl.Enum) int                { return 0 }
func (f *nopFunctions) GetString(pname gl.Enum) string              { return "" }
func (f *nopFunctions) PopDebugGroup()                              {}
func (f *nopFunctions) PushDebugGroup(source gl.Enum, id uint, message string) {}
func (f *nopFunctions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
}
func (f *nopFunctions) TexParameteri(target, pname gl.Enum, param int) {}
func (f *nopFunctions) Viewport(x, y, width, height int)               {}

// observer records focus changes.
type observer struct {
	events []string
}

func (o *observer) OnAppActivate()   { o.events = append(o.events, "activate") }
func (o *observer) OnAppDeactivate() { o.events = append(o.events, "deactivate") }
