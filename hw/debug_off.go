// SPDX-License-Identifier: Unlicense OR MIT

//go:build !hwdebug

package hw

const debugBuild = false
