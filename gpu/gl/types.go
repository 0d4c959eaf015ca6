// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Framebuffer struct{ V uint }
	Texture     struct{ V uint }
	Object      struct{ V uint }
)

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}
