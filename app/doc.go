// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs the main window of the engine and its graphics
device.

# Drivers

A Driver is a window system. The app/driver/sdl and app/driver/glfw
packages implement it with SDL2 and GLFW. Drivers, windows and the
primary rendering context belong to the main thread, so programs lock
it before creating the driver:

	func init() {
		runtime.LockOSThread()
	}

# Engine

An Engine creates the main window and the hw.Device rendering to it,
then runs the frame loop:

	drv, err := sdl.New()
	...
	e, err := app.NewEngine(drv, app.Options{Title: "demo"})
	...
	defer e.Close()
	err = e.Run(ctx, func(d *hw.Device) {
		// Issue draw calls with d.Functions().
	})

Run returns when the window is closed or the window system asks the
application to quit.

# Activation

The engine watches the focus and visibility events of the main window
and broadcasts activation changes through its Lifecycle. The device is
attached to the lifecycle so fullscreen windows minimize when the
application loses focus. Other components can observe the same
changes with Lifecycle.Add.
*/
package app
