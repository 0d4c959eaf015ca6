// SPDX-License-Identifier: Unlicense OR MIT

// Package sdl implements app.Driver with SDL2.
package sdl

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/xrgo/engine/app"
	"github.com/xrgo/engine/gpu/gl"
	"github.com/xrgo/engine/gpu/gl/gogl"
	"github.com/xrgo/engine/hw"
)

// Driver is an SDL2 window system. Windows are *sdl.Window values
// and contexts are sdl.GLContext values.
type Driver struct {
	funcs *gogl.Functions
}

var _ app.Driver = (*Driver)(nil)

// New initializes the SDL video subsystem. It must be called from
// the main thread.
func New() (*Driver, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}
	return new(Driver), nil
}

func (d *Driver) Terminate() {
	sdl.Quit()
}

var glAttrs = map[hw.Attribute]sdl.GLattr{
	hw.AttrContextProfile:          sdl.GL_CONTEXT_PROFILE_MASK,
	hw.AttrContextMajorVersion:     sdl.GL_CONTEXT_MAJOR_VERSION,
	hw.AttrContextMinorVersion:     sdl.GL_CONTEXT_MINOR_VERSION,
	hw.AttrRedSize:                 sdl.GL_RED_SIZE,
	hw.AttrGreenSize:               sdl.GL_GREEN_SIZE,
	hw.AttrBlueSize:                sdl.GL_BLUE_SIZE,
	hw.AttrAlphaSize:               sdl.GL_ALPHA_SIZE,
	hw.AttrDoubleBuffer:            sdl.GL_DOUBLEBUFFER,
	hw.AttrDepthSize:               sdl.GL_DEPTH_SIZE,
	hw.AttrStencilSize:             sdl.GL_STENCIL_SIZE,
	hw.AttrShareWithCurrentContext: sdl.GL_SHARE_WITH_CURRENT_CONTEXT,
}

// SetAttribute sets an SDL_GL attribute. The hw profile values
// equal the SDL_GL_CONTEXT_PROFILE ones.
func (d *Driver) SetAttribute(a hw.Attribute, value int) error {
	attr, ok := glAttrs[a]
	if !ok {
		return fmt.Errorf("sdl: unsupported attribute %v", a)
	}
	return sdl.GLSetAttribute(attr, value)
}

func window(w hw.Window) (*sdl.Window, error) {
	sw, ok := w.(*sdl.Window)
	if !ok || sw == nil {
		return nil, fmt.Errorf("sdl: invalid window %T", w)
	}
	return sw, nil
}

func (d *Driver) DisplayMode(w hw.Window) (hw.DisplayMode, error) {
	sw, err := window(w)
	if err != nil {
		return hw.DisplayMode{}, err
	}
	m, err := sw.GetDisplayMode()
	if err != nil {
		return hw.DisplayMode{}, err
	}
	return hw.DisplayMode{
		Format:      pixelFormat(m.Format),
		Width:       int(m.W),
		Height:      int(m.H),
		RefreshRate: int(m.RefreshRate),
	}, nil
}

func (d *Driver) SetDisplayMode(w hw.Window, m hw.DisplayMode) error {
	sw, err := window(w)
	if err != nil {
		return err
	}
	mode, err := sw.GetDisplayMode()
	if err != nil {
		return err
	}
	switch m.Format {
	case hw.PixelFormatRGBA8888:
		mode.Format = uint32(sdl.PIXELFORMAT_RGBA8888)
	case hw.PixelFormatRGB888:
		mode.Format = uint32(sdl.PIXELFORMAT_RGB888)
	}
	if m.Width > 0 && m.Height > 0 {
		mode.W, mode.H = int32(m.Width), int32(m.Height)
	}
	if m.RefreshRate > 0 {
		mode.RefreshRate = int32(m.RefreshRate)
	}
	return sw.SetDisplayMode(&mode)
}

func pixelFormat(f uint32) hw.PixelFormat {
	switch f {
	case uint32(sdl.PIXELFORMAT_RGBA8888):
		return hw.PixelFormatRGBA8888
	case uint32(sdl.PIXELFORMAT_RGB888):
		return hw.PixelFormatRGB888
	default:
		return hw.PixelFormatUnknown
	}
}

func (d *Driver) CreateContext(w hw.Window) (hw.Context, error) {
	sw, err := window(w)
	if err != nil {
		return nil, err
	}
	ctx, err := sw.GLCreateContext()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, sdl.GetError()
	}
	return ctx, nil
}

func (d *Driver) DeleteContext(c hw.Context) {
	if ctx, ok := c.(sdl.GLContext); ok {
		sdl.GLDeleteContext(ctx)
	}
}

func (d *Driver) MakeCurrent(w hw.Window, c hw.Context) error {
	if w == nil && c == nil {
		var none *sdl.Window
		return none.GLMakeCurrent(nil)
	}
	sw, err := window(w)
	if err != nil {
		return err
	}
	ctx, ok := c.(sdl.GLContext)
	if !ok {
		return fmt.Errorf("sdl: invalid context %T", c)
	}
	return sw.GLMakeCurrent(ctx)
}

func (d *Driver) CurrentContext() hw.Context {
	ctx, err := sdl.GLGetCurrentContext()
	if err != nil || ctx == nil {
		return nil
	}
	return ctx
}

func (d *Driver) CreateHelperWindow() (hw.Window, error) {
	return d.CreateWindow(app.WindowOptions{
		Title:  "helper",
		Width:  1,
		Height: 1,
		Flags:  hw.FlagOpenGL | hw.FlagHidden | hw.FlagBorderless,
	})
}

func (d *Driver) CreateWindow(opts app.WindowOptions) (hw.Window, error) {
	var flags uint32
	if opts.Flags.Has(hw.FlagOpenGL) {
		flags |= uint32(sdl.WINDOW_OPENGL)
	}
	if opts.Flags.Has(hw.FlagHidden) {
		flags |= uint32(sdl.WINDOW_HIDDEN)
	}
	if opts.Flags.Has(hw.FlagBorderless) {
		flags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	if opts.Flags.Has(hw.FlagResizable) {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if opts.Flags.Has(hw.FlagFullscreenDesktop) {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else if opts.Flags.Has(hw.FlagFullscreen) {
		flags |= uint32(sdl.WINDOW_FULLSCREEN)
	}
	w, err := sdl.CreateWindow(opts.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(opts.Width), int32(opts.Height), flags)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (d *Driver) DestroyWindow(w hw.Window) {
	if sw, err := window(w); err == nil {
		sw.Destroy()
	}
}

func (d *Driver) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

func (d *Driver) Swap(w hw.Window) {
	if sw, err := window(w); err == nil {
		sw.GLSwap()
	}
}

func (d *Driver) RestoreWindow(w hw.Window) {
	if sw, err := window(w); err == nil {
		sw.Restore()
	}
}

func (d *Driver) MinimizeWindow(w hw.Window) {
	if sw, err := window(w); err == nil {
		sw.Minimize()
	}
}

// Functions loads the OpenGL entry points on first use.
func (d *Driver) Functions() (gl.Functions, error) {
	if d.funcs != nil {
		return d.funcs, nil
	}
	if c := d.CurrentContext(); c == nil {
		return nil, errors.New("sdl: no current context")
	}
	f, err := gogl.New(sdl.GLGetProcAddress)
	if err != nil {
		return nil, err
	}
	d.funcs = f
	return f, nil
}

func (d *Driver) PollEvents(f func(e app.Event)) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			f(app.QuitEvent{})
		case *sdl.WindowEvent:
			typ, ok := windowEventType(ev.Event)
			if !ok {
				continue
			}
			w, err := sdl.GetWindowFromID(ev.WindowID)
			if err != nil {
				continue
			}
			e := app.WindowEvent{Window: w, Type: typ}
			if typ == app.WindowResized {
				e.Width, e.Height = int(ev.Data1), int(ev.Data2)
			}
			f(e)
		}
	}
}

func windowEventType(e uint8) (app.WindowEventType, bool) {
	switch e {
	case sdl.WINDOWEVENT_SHOWN:
		return app.WindowShown, true
	case sdl.WINDOWEVENT_HIDDEN:
		return app.WindowHidden, true
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return app.WindowFocusGained, true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return app.WindowFocusLost, true
	case sdl.WINDOWEVENT_RESTORED:
		return app.WindowRestored, true
	case sdl.WINDOWEVENT_MINIMIZED:
		return app.WindowMinimized, true
	case sdl.WINDOWEVENT_MAXIMIZED:
		return app.WindowMaximized, true
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		return app.WindowResized, true
	case sdl.WINDOWEVENT_CLOSE:
		return app.WindowClose, true
	default:
		return 0, false
	}
}
