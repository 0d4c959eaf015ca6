// SPDX-License-Identifier: Unlicense OR MIT

// Package glfw implements app.Driver with GLFW 3.3.
//
// GLFW has no contexts apart from windows: every window owns one
// context. The context of a regular window is created with the
// window. The helper window is created lazily by CreateContext so
// it can share objects with the context current at that time.
package glfw

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/xrgo/engine/app"
	"github.com/xrgo/engine/gpu/gl"
	"github.com/xrgo/engine/gpu/gl/gogl"
	"github.com/xrgo/engine/hw"
)

// Driver is a GLFW window system. Windows are *glfw.Window values.
type Driver struct {
	attrs    map[hw.Attribute]int
	contexts map[*glfw.Window]*context
	pending  []app.Event
	funcs    *gogl.Functions
}

// context is the context of win. Owned contexts destroy their
// window when deleted.
type context struct {
	win   *glfw.Window
	owned bool
}

// helperWindow stands in for the helper window until its context
// is created.
type helperWindow struct {
	ctx *context
}

var _ app.Driver = (*Driver)(nil)

// New initializes GLFW. It must be called from the main thread.
func New() (*Driver, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	return &Driver{
		attrs:    make(map[hw.Attribute]int),
		contexts: make(map[*glfw.Window]*context),
	}, nil
}

func (d *Driver) Terminate() {
	glfw.Terminate()
}

// SetAttribute records a for the next window creation.
func (d *Driver) SetAttribute(a hw.Attribute, value int) error {
	if a > hw.AttrShareWithCurrentContext {
		return fmt.Errorf("glfw: unsupported attribute %v", a)
	}
	d.attrs[a] = value
	return nil
}

// hints applies the recorded attributes as window hints.
func (d *Driver) hints() {
	glfw.DefaultWindowHints()
	for h, v := range profileHints(d.attrs) {
		glfw.WindowHint(h, v)
	}
	for a, v := range d.attrs {
		switch a {
		case hw.AttrContextMajorVersion:
			glfw.WindowHint(glfw.ContextVersionMajor, v)
		case hw.AttrContextMinorVersion:
			glfw.WindowHint(glfw.ContextVersionMinor, v)
		case hw.AttrRedSize:
			glfw.WindowHint(glfw.RedBits, v)
		case hw.AttrGreenSize:
			glfw.WindowHint(glfw.GreenBits, v)
		case hw.AttrBlueSize:
			glfw.WindowHint(glfw.BlueBits, v)
		case hw.AttrAlphaSize:
			glfw.WindowHint(glfw.AlphaBits, v)
		case hw.AttrDoubleBuffer:
			glfw.WindowHint(glfw.DoubleBuffer, boolHint(v != 0))
		case hw.AttrDepthSize:
			glfw.WindowHint(glfw.DepthBits, v)
		case hw.AttrStencilSize:
			glfw.WindowHint(glfw.StencilBits, v)
		}
	}
}

// profileHints maps the profile attribute to window hints. GLFW
// rejects profiles below OpenGL 3.2 and forward compatibility below
// 3.0, so without such a version request the driver default
// profile is kept.
func profileHints(attrs map[hw.Attribute]int) map[glfw.Hint]int {
	hints := make(map[glfw.Hint]int)
	profile, ok := attrs[hw.AttrContextProfile]
	if !ok {
		return hints
	}
	if profile == hw.ProfileES {
		hints[glfw.ClientAPI] = glfw.OpenGLESAPI
		return hints
	}
	major := attrs[hw.AttrContextMajorVersion]
	minor := attrs[hw.AttrContextMinorVersion]
	if major < 3 || major == 3 && minor < 2 {
		return hints
	}
	switch profile {
	case hw.ProfileCore:
		hints[glfw.OpenGLProfile] = glfw.OpenGLCoreProfile
		hints[glfw.OpenGLForwardCompatible] = glfw.True
	case hw.ProfileCompatibility:
		hints[glfw.OpenGLProfile] = glfw.OpenGLCompatProfile
	}
	return hints
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (d *Driver) CreateWindow(opts app.WindowOptions) (hw.Window, error) {
	d.hints()
	if !opts.Flags.Has(hw.FlagOpenGL) {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}
	glfw.WindowHint(glfw.Visible, boolHint(!opts.Flags.Has(hw.FlagHidden)))
	glfw.WindowHint(glfw.Decorated, boolHint(!opts.Flags.Has(hw.FlagBorderless)))
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Flags.Has(hw.FlagResizable)))

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if opts.Flags.Has(hw.FlagFullscreen) || opts.Flags.Has(hw.FlagFullscreenDesktop) {
		monitor = glfw.GetPrimaryMonitor()
	}
	if monitor != nil && opts.Flags.Has(hw.FlagFullscreenDesktop) {
		vm := monitor.GetVideoMode()
		width, height = vm.Width, vm.Height
		glfw.WindowHint(glfw.RefreshRate, vm.RefreshRate)
	}
	w, err := glfw.CreateWindow(width, height, opts.Title, monitor, nil)
	if err != nil {
		return nil, err
	}
	if opts.Flags.Has(hw.FlagOpenGL) {
		d.contexts[w] = &context{win: w}
	}
	d.watch(w)
	return w, nil
}

// watch queues the window events of w for PollEvents.
func (d *Driver) watch(w *glfw.Window) {
	w.SetFocusCallback(func(w *glfw.Window, focused bool) {
		typ := app.WindowFocusLost
		if focused {
			typ = app.WindowFocusGained
		}
		d.pending = append(d.pending, app.WindowEvent{Window: w, Type: typ})
	})
	w.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		typ := app.WindowRestored
		if iconified {
			typ = app.WindowMinimized
		}
		d.pending = append(d.pending, app.WindowEvent{Window: w, Type: typ})
	})
	w.SetMaximizeCallback(func(w *glfw.Window, maximized bool) {
		typ := app.WindowRestored
		if maximized {
			typ = app.WindowMaximized
		}
		d.pending = append(d.pending, app.WindowEvent{Window: w, Type: typ})
	})
	w.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		d.pending = append(d.pending, app.WindowEvent{Window: w, Type: app.WindowResized, Width: width, Height: height})
	})
	w.SetCloseCallback(func(w *glfw.Window) {
		d.pending = append(d.pending, app.WindowEvent{Window: w, Type: app.WindowClose})
	})
}

func (d *Driver) PollEvents(f func(e app.Event)) {
	glfw.PollEvents()
	events := d.pending
	d.pending = nil
	for _, e := range events {
		f(e)
	}
}

func (d *Driver) CreateHelperWindow() (hw.Window, error) {
	return new(helperWindow), nil
}

func (d *Driver) CreateContext(w hw.Window) (hw.Context, error) {
	switch w := w.(type) {
	case *glfw.Window:
		c, ok := d.contexts[w]
		if !ok {
			return nil, errors.New("glfw: window has no OpenGL context")
		}
		return c, nil
	case *helperWindow:
		if w.ctx != nil {
			return nil, errors.New("glfw: helper window already has a context")
		}
		var share *glfw.Window
		if d.attrs[hw.AttrShareWithCurrentContext] != 0 {
			share = glfw.GetCurrentContext()
		}
		d.hints()
		glfw.WindowHint(glfw.Visible, glfw.False)
		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Resizable, glfw.False)
		win, err := glfw.CreateWindow(1, 1, "helper", nil, share)
		if err != nil {
			return nil, err
		}
		c := &context{win: win, owned: true}
		d.contexts[win] = c
		w.ctx = c
		return c, nil
	default:
		return nil, fmt.Errorf("glfw: invalid window %T", w)
	}
}

func (d *Driver) DeleteContext(c hw.Context) {
	ctx, ok := c.(*context)
	if !ok || ctx.win == nil {
		return
	}
	delete(d.contexts, ctx.win)
	if ctx.owned {
		ctx.win.Destroy()
	}
	ctx.win = nil
}

func (d *Driver) MakeCurrent(w hw.Window, c hw.Context) error {
	if c == nil {
		glfw.DetachCurrentContext()
		return nil
	}
	ctx, ok := c.(*context)
	if !ok || ctx.win == nil {
		return fmt.Errorf("glfw: invalid context %T", c)
	}
	ctx.win.MakeContextCurrent()
	return nil
}

func (d *Driver) CurrentContext() hw.Context {
	cur := glfw.GetCurrentContext()
	if cur == nil {
		return nil
	}
	if c, ok := d.contexts[cur]; ok {
		return c
	}
	return nil
}

func (d *Driver) DestroyWindow(w hw.Window) {
	switch w := w.(type) {
	case *glfw.Window:
		delete(d.contexts, w)
		w.Destroy()
	case *helperWindow:
		if w.ctx != nil {
			d.DeleteContext(w.ctx)
			w.ctx = nil
		}
	}
}

// The ..._swap_control_tear extensions add negative swap
// intervals.
var tearExtensions = []string{
	"GLX_EXT_swap_control_tear",
	"WGL_EXT_swap_control_tear",
}

func (d *Driver) SetSwapInterval(interval int) error {
	if glfw.GetCurrentContext() == nil {
		return errors.New("glfw: no current context")
	}
	if interval < 0 && !adaptiveVSync() {
		return errors.New("glfw: adaptive vsync not supported")
	}
	glfw.SwapInterval(interval)
	return nil
}

func adaptiveVSync() bool {
	for _, ext := range tearExtensions {
		if glfw.ExtensionSupported(ext) {
			return true
		}
	}
	return false
}

func (d *Driver) Swap(w hw.Window) {
	if w, ok := w.(*glfw.Window); ok {
		w.SwapBuffers()
	}
}

func (d *Driver) RestoreWindow(w hw.Window) {
	if w, ok := w.(*glfw.Window); ok {
		w.Restore()
	}
}

func (d *Driver) MinimizeWindow(w hw.Window) {
	if w, ok := w.(*glfw.Window); ok {
		w.Iconify()
	}
}

func (d *Driver) monitor(w hw.Window) (*glfw.Window, *glfw.Monitor, error) {
	win, ok := w.(*glfw.Window)
	if !ok {
		return nil, nil, fmt.Errorf("glfw: invalid window %T", w)
	}
	m := win.GetMonitor()
	if m == nil {
		m = glfw.GetPrimaryMonitor()
	}
	if m == nil {
		return nil, nil, errors.New("glfw: no monitor")
	}
	return win, m, nil
}

func (d *Driver) DisplayMode(w hw.Window) (hw.DisplayMode, error) {
	_, m, err := d.monitor(w)
	if err != nil {
		return hw.DisplayMode{}, err
	}
	vm := m.GetVideoMode()
	if vm == nil {
		return hw.DisplayMode{}, errors.New("glfw: no video mode")
	}
	format := hw.PixelFormatUnknown
	if vm.RedBits == 8 && vm.GreenBits == 8 && vm.BlueBits == 8 {
		format = hw.PixelFormatRGB888
	}
	return hw.DisplayMode{
		Format:      format,
		Width:       vm.Width,
		Height:      vm.Height,
		RefreshRate: vm.RefreshRate,
	}, nil
}

// SetDisplayMode changes the video mode of fullscreen windows. The
// pixel format is fixed by the context attributes; windowed windows
// keep the desktop mode.
func (d *Driver) SetDisplayMode(w hw.Window, m hw.DisplayMode) error {
	win, mon, err := d.monitor(w)
	if err != nil {
		return err
	}
	if win.GetMonitor() == nil || m.Width <= 0 || m.Height <= 0 {
		return nil
	}
	win.SetMonitor(mon, 0, 0, m.Width, m.Height, m.RefreshRate)
	return nil
}

// Functions loads the OpenGL entry points on first use.
func (d *Driver) Functions() (gl.Functions, error) {
	if d.funcs != nil {
		return d.funcs, nil
	}
	if glfw.GetCurrentContext() == nil {
		return nil, errors.New("glfw: no current context")
	}
	f, err := gogl.New(glfw.GetProcAddress)
	if err != nil {
		return nil, err
	}
	d.funcs = f
	return f, nil
}
