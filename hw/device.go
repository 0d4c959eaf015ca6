// SPDX-License-Identifier: Unlicense OR MIT

// Package hw implements the graphics device: the OpenGL rendering
// contexts of the main window, the default framebuffer, vsync and
// presentation.
//
// The device owns two contexts. The primary context renders every
// frame. The helper context shares the primary's object namespace
// (textures, buffers, shaders) and is bound to an invisible 1x1
// window so a second thread can create GPU objects while the
// primary thread renders. See Uploader.
package hw

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/xrgo/engine/config"
	"github.com/xrgo/engine/gpu/gl"
)

// Observer receives application focus changes.
type Observer interface {
	OnAppActivate()
	OnAppDeactivate()
}

// Notifier delivers application focus changes to the one device
// of the application.
type Notifier interface {
	// AttachDevice registers o. It reports false and leaves the
	// notifier unchanged when another device is already attached.
	AttachDevice(o Observer) bool
	DetachDevice(o Observer)
}

// Options configure a Device.
type Options struct {
	// Config is the device configuration. It is read on use, not
	// copied. Nil means config.Default().
	Config *config.Config
	Params config.Params
	Logger *slog.Logger
	// Notifier, if set, delivers focus changes to the device.
	Notifier Notifier
	// Fatal is called for unrecoverable precondition violations.
	// The default panics with the *FatalError. Fatal must not
	// return; if it does the operation is abandoned.
	Fatal func(err *FatalError)
	// DebugOutput enables KHR_debug message logging also in
	// builds without the hwdebug tag.
	DebugOutput bool
}

// DeviceState is the coarse health of a device.
type DeviceState uint8

const (
	StateNormal DeviceState = iota
	StateLost
	StateNeedReset
)

// Device is the graphics device of the main window.
type Device struct {
	p        Platform
	funcs    gl.Functions
	cfg      *config.Config
	params   config.Params
	log      *slog.Logger
	notifier Notifier
	fatalf   func(err *FatalError)
	debug    bool

	window       Window
	primary      Context
	helperWindow Window
	helper       Context

	// uploaderMu guards uploader, which Uploader.Close clears from
	// any goroutine.
	uploaderMu sync.Mutex
	uploader   *Uploader

	fbo             gl.Framebuffer
	backBufferCount int
	backBuffer      int

	caps    Caps
	version Version
	exts    []string
}

var _ Observer = (*Device)(nil)

// New returns a device over p. Contexts are not created until
// CreateDevice. If opts.Notifier accepts the device it receives
// focus changes until Release.
func New(p Platform, opts Options) *Device {
	d := &Device{
		p:      p,
		cfg:    opts.Config,
		params: opts.Params,
		log:    opts.Logger,
		fatalf: opts.Fatal,
		debug:  debugBuild || opts.DebugOutput,
	}
	if d.cfg == nil {
		d.cfg = config.Default()
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	if d.fatalf == nil {
		d.fatalf = defaultFatal
	}
	if n := opts.Notifier; n != nil && n.AttachDevice(d) {
		d.notifier = n
	}
	return d
}

// Release detaches the device from its notifier, if it was the
// attached one. It doesn't destroy the contexts; see DestroyDevice.
func (d *Device) Release() {
	if d.notifier == nil {
		return
	}
	d.notifier.DetachDevice(d)
	d.notifier = nil
}

// Registered reports whether the device receives focus changes.
func (d *Device) Registered() bool {
	return d.notifier != nil
}

func (d *Device) OnAppActivate() {
	if d.window != nil {
		d.p.RestoreWindow(d.window)
	}
}

func (d *Device) OnAppDeactivate() {
	if d.window == nil {
		return
	}
	// Exclusive fullscreen windows that stay up without focus
	// fight the focused application for the GPU.
	if d.cfg.Mode.Fullscreen() {
		d.p.MinimizeWindow(d.window)
	}
}

func (d *Device) fatal(msg string, err error) {
	d.log.Error("! "+msg, "err", err)
	d.fatalf(&FatalError{Msg: msg, Err: err})
}

// CreateDevice creates the contexts for window and the default
// framebuffer. A nil window is fatal, as is failing to create the
// helper window or context. Other failures are logged and returned;
// the device is unusable afterwards. Objects created before a failing
// step are not released.
func (d *Device) CreateDevice(window Window) error {
	if isNil(window) {
		d.fatal("CreateDevice: nil window", nil)
		return &FatalError{Msg: "CreateDevice: nil window"}
	}
	d.window = window

	// Normalize the pixel format across display configurations.
	mode, err := d.p.DisplayMode(window)
	if err != nil {
		d.log.Warn("~ Could not query display mode", "err", err)
	} else {
		mode.Format = PixelFormatRGBA8888
		if err := d.p.SetDisplayMode(window, mode); err != nil {
			d.log.Warn("~ Could not apply display mode", "err", err)
		}
	}

	ctx, err := d.p.CreateContext(window)
	if err != nil {
		d.log.Error("! Could not create drawing context", "err", err)
		return fmt.Errorf("hw: create context: %w", err)
	}
	d.primary = ctx

	if err := d.MakeContextCurrent(PrimaryContext); err != nil {
		d.log.Error("! Could not make context current", "err", err)
		return fmt.Errorf("hw: make context current: %w", err)
	}

	if err := d.createHelper(); err != nil {
		return err
	}

	if err := d.MakeContextCurrent(PrimaryContext); err != nil {
		d.log.Error("! Could not make context current after creating helper context", "err", err)
		return fmt.Errorf("hw: make context current: %w", err)
	}

	funcs, err := d.p.Functions()
	if err != nil {
		d.log.Error("! Could not load OpenGL functions", "err", err)
		return fmt.Errorf("hw: load functions: %w", err)
	}
	d.funcs = funcs
	d.exts = gl.Extensions(funcs)

	d.UpdateVSync()

	if d.debug && d.hasDebugExtension() {
		funcs.Enable(gl.DEBUG_OUTPUT)
		funcs.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		funcs.DebugMessageCallback(d.onDebugMessage)
	}

	d.caps, d.version = detectCaps(funcs, d.exts)
	d.log.Info(fmt.Sprintf("* GPU vendor: [%s] device: [%s]", d.version.Vendor, d.version.Adapter))
	d.log.Info("* GPU OpenGL version: " + d.version.String)
	d.log.Info("* GPU OpenGL shading language version: " + d.version.ShadingLanguage)
	d.log.Info(fmt.Sprintf("* GPU OpenGL VTF units: [%d] CTI units: [%d]", d.caps.MaxVertexTextureUnits, d.caps.MaxCombinedTextureUnits))

	d.UpdateViews()
	return nil
}

// createHelper creates the helper window and a context sharing
// objects with the current one. Sharing is enabled only around the
// helper creation so contexts created later don't share by accident.
func (d *Device) createHelper() error {
	win, err := d.p.CreateHelperWindow()
	if err != nil || isNil(win) {
		d.fatal("Cannot create helper window for OpenGL", err)
		return &FatalError{Msg: "create helper window", Err: err}
	}
	d.helperWindow = win

	if err := d.p.SetAttribute(AttrShareWithCurrentContext, 1); err != nil {
		d.log.Warn("~ Could not enable context sharing", "err", err)
	}
	ctx, err := d.p.CreateContext(win)
	d.p.SetAttribute(AttrShareWithCurrentContext, 0)
	if err != nil || isNil(ctx) {
		d.fatal("Cannot create OpenGL context", err)
		return &FatalError{Msg: "create helper context", Err: err}
	}
	d.helper = ctx
	return nil
}

// DestroyDevice unbinds and deletes both contexts and the helper
// window. The main window is forgotten but not destroyed.
func (d *Device) DestroyDevice() {
	d.uploaderMu.Lock()
	u := d.uploader
	d.uploaderMu.Unlock()
	if u != nil {
		u.Close()
	}
	d.p.MakeCurrent(nil, nil)

	if d.primary != nil {
		d.p.DeleteContext(d.primary)
		d.primary = nil
	}
	if d.helper != nil {
		d.p.DeleteContext(d.helper)
		d.helper = nil
	}
	if d.helperWindow != nil {
		d.p.DestroyWindow(d.helperWindow)
		d.helperWindow = nil
	}
	d.window = nil
	d.funcs = nil
	d.fbo = gl.Framebuffer{}
	d.backBufferCount = 0
	d.backBuffer = 0
}

// Reset recreates the framebuffer dependent state after a display
// mode or swap chain change. The contexts are kept.
func (d *Device) Reset() {
	if d.funcs == nil {
		return
	}
	d.funcs.DeleteFramebuffer(d.fbo)
	d.UpdateViews()
	d.UpdateVSync()
}

// UpdateViews creates and binds the default framebuffer.
func (d *Device) UpdateViews() {
	if d.funcs == nil {
		return
	}
	d.fbo = d.funcs.CreateFramebuffer()
	d.funcs.BindFramebuffer(gl.FRAMEBUFFER, d.fbo)
	d.backBufferCount = 1
}

// UpdateVSync applies the vsync setting to the current context,
// preferring adaptive vsync.
func (d *Device) UpdateVSync() {
	if !d.cfg.VSync {
		d.p.SetSwapInterval(0)
		return
	}
	if err := d.p.SetSwapInterval(-1); err != nil {
		d.p.SetSwapInterval(1)
	}
}

// BeginScene is called before the frame is rendered.
func (d *Device) BeginScene() {}

// EndScene is called after the frame is rendered.
func (d *Device) EndScene() {}

// Present copies the default framebuffer to the window and swaps
// the window buffers.
func (d *Device) Present() {
	if d.backBufferCount == 0 {
		return
	}
	w, h := d.SurfaceSize()
	d.funcs.BindFramebuffer(gl.READ_FRAMEBUFFER, d.fbo)
	d.funcs.BindFramebuffer(gl.DRAW_FRAMEBUFFER, gl.Framebuffer{})
	d.funcs.BlitFramebuffer(
		0, 0, w, h,
		0, 0, w, h,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)

	d.p.Swap(d.window)
	d.backBuffer = (d.backBuffer + 1) % d.backBufferCount
}

// DeviceState reports StateNormal. Context loss is not detected.
func (d *Device) DeviceState() DeviceState {
	return StateNormal
}

// SurfaceSize returns the configured surface size. It doesn't
// query the window.
func (d *Device) SurfaceSize() (width, height int) {
	return d.cfg.Width, d.cfg.Height
}

// BeginPixEvent opens a named debug group for GPU debuggers. Every
// call must be matched by EndPixEvent.
func (d *Device) BeginPixEvent(name string) {
	if d.hasDebugExtension() {
		d.funcs.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, name)
	}
}

// EndPixEvent closes the innermost debug group.
func (d *Device) EndPixEvent() {
	if d.hasDebugExtension() {
		d.funcs.PopDebugGroup()
	}
}

func (d *Device) hasDebugExtension() bool {
	return d.funcs != nil && gl.HasExtension(d.exts, "GL_KHR_debug")
}

func (d *Device) onDebugMessage(source, typ gl.Enum, id uint, severity gl.Enum, message string) {
	if severity == gl.DEBUG_SEVERITY_NOTIFICATION {
		return
	}
	d.log.Warn(message, "id", id)
}

func (d *Device) Caps() Caps {
	return d.caps
}

func (d *Device) Version() Version {
	return d.version
}

// Functions returns the OpenGL functions of the device, or nil
// before CreateDevice.
func (d *Device) Functions() gl.Functions {
	return d.funcs
}

// Framebuffer returns the default framebuffer.
func (d *Device) Framebuffer() gl.Framebuffer {
	return d.fbo
}

// BackBuffer returns the index of the current back buffer and the
// number of back buffers.
func (d *Device) BackBuffer() (index, count int) {
	return d.backBuffer, d.backBufferCount
}
