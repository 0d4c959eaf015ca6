// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// NoGLContext suppresses the explicit context version request.
const NoGLContext = "-no_gl_context"

// Params are the startup parameters of the engine, as given on the
// command line or in a shortcut's argument string.
type Params struct {
	raw   string
	words []string
}

// ParseParams splits s into words using shell quoting rules.
func ParseParams(s string) (Params, error) {
	words, err := shellwords.Parse(s)
	if err != nil {
		return Params{}, err
	}
	return Params{raw: s, words: words}, nil
}

// ParamsFromArgs builds Params from already split arguments.
func ParamsFromArgs(args []string) Params {
	return Params{
		raw:   strings.Join(args, " "),
		words: append([]string(nil), args...),
	}
}

// Has reports whether flag is one of the parameters.
func (p Params) Has(flag string) bool {
	for _, w := range p.words {
		if w == flag {
			return true
		}
	}
	return false
}

// Value returns the word following flag, as in "-fsltx path".
func (p Params) Value(flag string) (string, bool) {
	for i, w := range p.words {
		if w == flag && i+1 < len(p.words) {
			return p.words[i+1], true
		}
	}
	return "", false
}

func (p Params) String() string {
	return p.raw
}
