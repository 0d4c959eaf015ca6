// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/xrgo/engine/hw"
)

// Driver is a window system: the context API the device needs
// plus window creation and event delivery. Driver methods must be
// called from the thread that created the driver.
type Driver interface {
	hw.Platform
	CreateWindow(opts WindowOptions) (hw.Window, error)
	// PollEvents delivers pending events to f without blocking.
	PollEvents(f func(e Event))
	// Terminate releases the window system. The driver is unusable
	// afterwards.
	Terminate()
}

// WindowOptions describe a window to create.
type WindowOptions struct {
	Title         string
	Width, Height int
	Flags         hw.WindowFlags
}

// Event is a window system event.
type Event interface {
	ImplementsEvent()
}

// WindowEvent reports a change to a window.
type WindowEvent struct {
	Window hw.Window
	Type   WindowEventType
	// Width and Height are set for WindowResized.
	Width, Height int
}

// QuitEvent requests the application to exit.
type QuitEvent struct{}

// WindowEventType is the type of a WindowEvent.
type WindowEventType uint8

const (
	WindowShown WindowEventType = iota
	WindowHidden
	WindowFocusGained
	WindowFocusLost
	WindowRestored
	WindowMinimized
	WindowMaximized
	WindowResized
	WindowClose
)

func (t WindowEventType) String() string {
	switch t {
	case WindowShown:
		return "Shown"
	case WindowHidden:
		return "Hidden"
	case WindowFocusGained:
		return "FocusGained"
	case WindowFocusLost:
		return "FocusLost"
	case WindowRestored:
		return "Restored"
	case WindowMinimized:
		return "Minimized"
	case WindowMaximized:
		return "Maximized"
	case WindowResized:
		return "Resized"
	case WindowClose:
		return "Close"
	default:
		panic("unknown WindowEventType value")
	}
}

func (WindowEvent) ImplementsEvent() {}
func (QuitEvent) ImplementsEvent()   {}
