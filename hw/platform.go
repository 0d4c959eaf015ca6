// SPDX-License-Identifier: Unlicense OR MIT

package hw

import (
	"reflect"

	"github.com/xrgo/engine/gpu/gl"
)

// Window is an opaque native window handle owned by a Platform.
type Window any

// Context is an opaque native rendering context handle. Contexts
// are compared by identity, so implementations must return the
// same comparable value for the same context and an untyped nil
// when there is no context.
type Context any

// Platform is the window system and context API the device is
// built on, for example SDL or GLFW. Its methods wrap the native
// calls one to one; errors carry the native error string.
type Platform interface {
	// SetAttribute configures the next context creation.
	SetAttribute(a Attribute, value int) error
	DisplayMode(w Window) (DisplayMode, error)
	SetDisplayMode(w Window, m DisplayMode) error
	// CreateContext creates a rendering context for w. When the
	// AttrShareWithCurrentContext attribute is set, the new context
	// shares its object namespace with the current one.
	CreateContext(w Window) (Context, error)
	DeleteContext(c Context)
	// MakeCurrent binds w and c to the calling thread. A nil window
	// and context unbind the thread.
	MakeCurrent(w Window, c Context) error
	CurrentContext() Context
	// CreateHelperWindow creates the invisible, borderless 1x1
	// window the helper context renders to.
	CreateHelperWindow() (Window, error)
	DestroyWindow(w Window)
	// SetSwapInterval sets the swap interval of the current
	// context. A negative interval requests adaptive vsync and
	// fails when the driver doesn't support it.
	SetSwapInterval(interval int) error
	Swap(w Window)
	RestoreWindow(w Window)
	MinimizeWindow(w Window)
	// Functions returns the OpenGL functions of the current
	// context.
	Functions() (gl.Functions, error)
}

// Attribute is a context creation attribute.
type Attribute uint8

const (
	AttrContextProfile Attribute = iota
	AttrContextMajorVersion
	AttrContextMinorVersion
	AttrRedSize
	AttrGreenSize
	AttrBlueSize
	AttrAlphaSize
	AttrDoubleBuffer
	AttrDepthSize
	AttrStencilSize
	AttrShareWithCurrentContext
)

// Values of AttrContextProfile.
const (
	ProfileCore = 1 << iota
	ProfileCompatibility
	ProfileES
)

func (a Attribute) String() string {
	switch a {
	case AttrContextProfile:
		return "ContextProfile"
	case AttrContextMajorVersion:
		return "ContextMajorVersion"
	case AttrContextMinorVersion:
		return "ContextMinorVersion"
	case AttrRedSize:
		return "RedSize"
	case AttrGreenSize:
		return "GreenSize"
	case AttrBlueSize:
		return "BlueSize"
	case AttrAlphaSize:
		return "AlphaSize"
	case AttrDoubleBuffer:
		return "DoubleBuffer"
	case AttrDepthSize:
		return "DepthSize"
	case AttrStencilSize:
		return "StencilSize"
	case AttrShareWithCurrentContext:
		return "ShareWithCurrentContext"
	default:
		panic("unknown Attribute value")
	}
}

// WindowFlags are window creation flags.
type WindowFlags uint32

const (
	FlagOpenGL WindowFlags = 1 << iota
	FlagHidden
	FlagBorderless
	FlagResizable
	FlagFullscreen
	// FlagFullscreenDesktop is a fullscreen window at the desktop
	// resolution.
	FlagFullscreenDesktop
)

func (f WindowFlags) Has(flags WindowFlags) bool {
	return f&flags == flags
}

// PixelFormat is a native display pixel format.
type PixelFormat uint32

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatRGB888
	PixelFormatRGBA8888
)

// DisplayMode describes the display mode of a window.
type DisplayMode struct {
	Format        PixelFormat
	Width, Height int
	RefreshRate   int
}

// isNil reports whether a handle is nil, including typed nil
// pointers stored in the interface.
func isNil(h any) bool {
	if h == nil {
		return true
	}
	switch v := reflect.ValueOf(h); v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
