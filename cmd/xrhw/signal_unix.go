// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// stopSignals end the frame loop.
var stopSignals = []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP}
