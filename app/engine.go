// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xrgo/engine/config"
	"github.com/xrgo/engine/hw"
)

// Options configure an Engine.
type Options struct {
	// Title of the main window.
	Title string
	// Config is the device configuration, config.Default() if nil.
	// The engine updates its size when the window is resized.
	Config *config.Config
	Params config.Params
	Logger *slog.Logger
	// Fatal and DebugOutput are passed to the device.
	Fatal       func(err *hw.FatalError)
	DebugOutput bool
}

// Engine owns the main window, the graphics device and the
// lifecycle the device is registered with.
type Engine struct {
	drv       Driver
	log       *slog.Logger
	cfg       *config.Config
	lifecycle *Lifecycle
	device    *hw.Device
	window    hw.Window
	active    bool
}

// inactiveDelay throttles the loop while the application is
// inactive.
var inactiveDelay = 50 * time.Millisecond

// NewEngine creates the main window on drv and the device for it.
func NewEngine(drv Driver, opts Options) (*Engine, error) {
	e := &Engine{
		drv:       drv,
		log:       opts.Logger,
		cfg:       opts.Config,
		lifecycle: NewLifecycle(),
		active:    true,
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.cfg == nil {
		e.cfg = config.Default()
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	e.device = hw.New(drv, hw.Options{
		Config:      e.cfg,
		Params:      opts.Params,
		Logger:      e.log,
		Notifier:    e.lifecycle,
		Fatal:       opts.Fatal,
		DebugOutput: opts.DebugOutput,
	})

	flags := windowFlags(e.cfg.Mode)
	e.device.SetPrimaryAttributes(&flags)
	win, err := drv.CreateWindow(WindowOptions{
		Title:  opts.Title,
		Width:  e.cfg.Width,
		Height: e.cfg.Height,
		Flags:  flags,
	})
	if err != nil {
		e.device.Release()
		return nil, fmt.Errorf("app: create window: %w", err)
	}
	e.window = win
	if err := e.device.CreateDevice(win); err != nil {
		e.device.Release()
		return nil, err
	}
	return e, nil
}

func windowFlags(mode config.WindowMode) hw.WindowFlags {
	switch mode {
	case config.Borderless:
		return hw.FlagBorderless
	case config.Fullscreen:
		return hw.FlagFullscreen
	case config.FullscreenBorderless:
		return hw.FlagFullscreenDesktop | hw.FlagBorderless
	default:
		return hw.FlagResizable
	}
}

func (e *Engine) Device() *hw.Device {
	return e.device
}

func (e *Engine) Lifecycle() *Lifecycle {
	return e.lifecycle
}

// Active reports whether the application has focus.
func (e *Engine) Active() bool {
	return e.active
}

// Run processes window events and renders frames until the window
// system asks to quit or ctx is done. frame is called between
// BeginScene and EndScene of every frame while the application is
// active.
func (e *Engine) Run(ctx context.Context, frame func(d *hw.Device)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if quit := e.processEvents(); quit {
			return nil
		}
		if !e.active {
			time.Sleep(inactiveDelay)
			continue
		}
		e.device.BeginScene()
		if frame != nil {
			frame(e.device)
		}
		e.device.EndScene()
		e.device.Present()
	}
}

// processEvents drains the pending events. Activation changes of
// the main window are coalesced: only the last one of the batch is
// broadcast.
func (e *Engine) processEvents() (quit bool) {
	var (
		canActivate    bool
		shouldActivate bool
		resized        bool
	)
	e.drv.PollEvents(func(ev Event) {
		switch ev := ev.(type) {
		case QuitEvent:
			quit = true
		case WindowEvent:
			if ev.Window != e.window {
				e.forwardWindowEvent(ev)
				return
			}
			switch ev.Type {
			case WindowShown, WindowFocusGained, WindowRestored, WindowMaximized:
				canActivate, shouldActivate = true, true
			case WindowHidden, WindowFocusLost, WindowMinimized:
				canActivate, shouldActivate = true, false
			case WindowResized:
				if ev.Width <= 0 || ev.Height <= 0 {
					return
				}
				if ev.Width != e.cfg.Width || ev.Height != e.cfg.Height {
					e.cfg.Width, e.cfg.Height = ev.Width, ev.Height
					resized = true
				}
			case WindowClose:
				quit = true
			}
		}
	})
	if canActivate {
		e.setActive(shouldActivate)
	}
	if resized {
		e.log.Debug("surface resized", "width", e.cfg.Width, "height", e.cfg.Height)
		e.device.Reset()
	}
	return quit
}

// forwardWindowEvent passes focus changes of secondary windows to
// the window observers right away; they don't change the
// application state.
func (e *Engine) forwardWindowEvent(ev WindowEvent) {
	switch ev.Type {
	case WindowShown, WindowFocusGained, WindowRestored, WindowMaximized:
		e.lifecycle.WindowActivate(ev.Window, true)
	case WindowHidden, WindowFocusLost, WindowMinimized:
		e.lifecycle.WindowActivate(ev.Window, false)
	}
}

func (e *Engine) setActive(active bool) {
	if e.active == active {
		return
	}
	e.active = active
	if active {
		e.lifecycle.Activate()
	} else {
		e.lifecycle.Deactivate()
	}
}

// Close destroys the device, the main window and the driver.
func (e *Engine) Close() {
	e.device.DestroyDevice()
	e.device.Release()
	if e.window != nil {
		e.drv.DestroyWindow(e.window)
		e.window = nil
	}
	e.drv.Terminate()
}
