// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ParseGLVersion returns the major and minor version of a VERSION
// string. Desktop strings start with the version ("4.6.0 NVIDIA
// 535.54"); ES strings carry a prefix ("OpenGL ES 3.2 Mesa").
func ParseGLVersion(s string) ([2]int, error) {
	var ver [2]int
	s = strings.TrimPrefix(s, "OpenGL ES ")
	if _, err := fmt.Sscanf(s, "%d.%d", &ver[0], &ver[1]); err != nil {
		return [2]int{}, fmt.Errorf("gl: unrecognized version %q", s)
	}
	return ver, nil
}

// Extensions returns the extension list of the current context.
func Extensions(f Functions) []string {
	return strings.Fields(f.GetString(EXTENSIONS))
}

// HasExtension reports whether ext is in exts.
func HasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// AtLeast reports whether version ver is at least major.minor.
func AtLeast(ver [2]int, major, minor int) bool {
	return ver[0] > major || ver[0] == major && ver[1] >= minor
}
