// SPDX-License-Identifier: Unlicense OR MIT

package hw

import (
	"fmt"

	"github.com/xrgo/engine/config"
)

// ContextTarget selects one of the device contexts.
type ContextTarget uint8

const (
	NoContext ContextTarget = iota
	PrimaryContext
	HelperContext
)

// Requested context version, unless suppressed by the
// config.NoGLContext startup parameter.
const (
	contextMajorVersion = 4
	contextMinorVersion = 1
)

func (c ContextTarget) String() string {
	switch c {
	case NoContext:
		return "NoContext"
	case PrimaryContext:
		return "PrimaryContext"
	case HelperContext:
		return "HelperContext"
	default:
		return fmt.Sprintf("ContextTarget(%d)", uint8(c))
	}
}

// SetPrimaryAttributes adds the window flags the primary window
// needs to flags and configures the attributes of the next context
// creation. Call it before creating the window.
func (d *Device) SetPrimaryAttributes(flags *WindowFlags) {
	*flags |= FlagOpenGL

	type attrValue struct {
		a Attribute
		v int
	}
	attrs := []attrValue{
		{AttrContextProfile, ProfileCore},
		{AttrRedSize, 8},
		{AttrGreenSize, 8},
		{AttrBlueSize, 8},
		{AttrAlphaSize, 8},
		{AttrDoubleBuffer, 1},
		{AttrDepthSize, 24},
		{AttrStencilSize, 8},
	}
	if !d.params.Has(config.NoGLContext) {
		attrs = append(attrs,
			attrValue{AttrContextMajorVersion, contextMajorVersion},
			attrValue{AttrContextMinorVersion, contextMinorVersion},
		)
	}
	for _, attr := range attrs {
		if err := d.p.SetAttribute(attr.a, attr.v); err != nil {
			d.log.Warn("~ Could not set context attribute", "attr", attr.a, "value", attr.v, "err", err)
		}
	}
}

// CurrentContext reports which device context is current on the
// calling thread.
func (d *Device) CurrentContext() ContextTarget {
	ctx := d.p.CurrentContext()
	switch {
	case isNil(ctx):
		return NoContext
	case ctx == d.primary:
		return PrimaryContext
	case ctx == d.helper:
		return HelperContext
	default:
		return NoContext
	}
}

// MakeContextCurrent binds the target context to the calling
// thread. NoContext unbinds the thread. An unknown target is fatal.
func (d *Device) MakeContextCurrent(target ContextTarget) error {
	switch target {
	case NoContext:
		return d.p.MakeCurrent(nil, nil)
	case PrimaryContext:
		return d.p.MakeCurrent(d.window, d.primary)
	case HelperContext:
		return d.p.MakeCurrent(d.helperWindow, d.helper)
	default:
		err := fmt.Errorf("unknown context target %v", target)
		d.fatal("MakeContextCurrent", err)
		return err
	}
}
