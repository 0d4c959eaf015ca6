// SPDX-License-Identifier: Unlicense OR MIT

// Command xrhw opens a window, creates the graphics device for it
// and clears the screen every frame. It exercises context creation,
// background uploads and presentation on a real window system.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/xrgo/engine/app"
	"github.com/xrgo/engine/app/driver/glfw"
	"github.com/xrgo/engine/app/driver/sdl"
	"github.com/xrgo/engine/config"
	"github.com/xrgo/engine/gpu/gl"
	"github.com/xrgo/engine/hw"
)

var (
	driverName = flag.String("driver", "sdl", "window system (sdl, glfw)")
	configPath = flag.String("config", "", "device configuration file (.toml, .yaml)")
	mode       = flag.String("mode", "", "override the window mode (windowed, borderless, fullscreen, fullscreen_borderless)")
	params     = flag.String("params", "", "startup parameters, for example \"-no_gl_context\"")
	debug      = flag.Bool("debug", false, "log OpenGL debug messages")
	frames     = flag.Int("frames", 0, "exit after rendering this many frames (0 runs until the window closes)")
	verbose    = flag.Bool("v", false, "verbose logging")
)

func init() {
	// Window systems and OpenGL contexts are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err := mainErr(log); err != nil {
		fmt.Fprintf(os.Stderr, "xrhw: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(log *slog.Logger) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		m, err := config.ParseWindowMode(*mode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	p, err := config.ParseParams(*params)
	if err != nil {
		return fmt.Errorf("invalid -params: %w", err)
	}

	drv, err := newDriver(*driverName)
	if err != nil {
		return err
	}
	e, err := app.NewEngine(drv, app.Options{
		Title:       "xrhw",
		Config:      cfg,
		Params:      p,
		Logger:      log,
		DebugOutput: *debug,
	})
	if err != nil {
		drv.Terminate()
		return err
	}
	defer e.Close()

	d := e.Device()
	caps := d.Caps()
	log.Info("device ready",
		"target", caps.TargetFormat,
		"depth", caps.DepthStencilFormat,
		"separate_shader_objects", caps.Features.Has(hw.FeatureSeparateShaderObjects),
		"shader_binary", caps.Features.Has(hw.FeatureShaderBinary))

	ctx, stop := signal.NotifyContext(context.Background(), stopSignals...)
	defer stop()

	tex, err := upload(ctx, d)
	if err != nil {
		return err
	}
	log.Debug("uploaded texture", "id", tex.V)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	n := 0
	err = e.Run(ctx, func(d *hw.Device) {
		d.BeginPixEvent("clear")
		f := d.Functions()
		w, h := d.SurfaceSize()
		f.Viewport(0, 0, w, h)
		c := float32(n%120) / 120
		f.ClearColor(c, 0.2, 1-c, 1)
		f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
		d.EndPixEvent()
		n++
		if *frames > 0 && n >= *frames {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info("exiting", "frames", n)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func newDriver(name string) (app.Driver, error) {
	switch name {
	case "sdl":
		return sdl.New()
	case "glfw":
		return glfw.New()
	default:
		return nil, fmt.Errorf("invalid -driver %s", name)
	}
}

// upload creates a 1x1 texture on the helper context while the
// primary context stays current on this thread.
func upload(ctx context.Context, d *hw.Device) (gl.Texture, error) {
	u, err := d.NewUploader()
	if err != nil {
		return gl.Texture{}, err
	}
	defer u.Close()
	var tex gl.Texture
	err = u.Do(ctx, func(f gl.Functions) error {
		tex = f.CreateTexture()
		f.BindTexture(gl.TEXTURE_2D, tex)
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, []byte{0xff, 0xff, 0xff, 0xff})
		if e := f.GetError(); e != gl.NO_ERROR {
			return fmt.Errorf("texture upload failed: 0x%x", e)
		}
		return nil
	})
	return tex, err
}
