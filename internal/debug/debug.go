// +build !release

package debug

import _ "unsafe"

//go:linkname throw runtime.throw
func throw(string)

// Assert runs fn and crashes through the runtime if it reports false. It
// compiles to nothing under the release tag.
func Assert(info string, fn func() bool) {
	if !fn() {
		throw("assertion failed: " + info)
	}
}
