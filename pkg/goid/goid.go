// Package goid resolves the identity of the current goroutine.
//
// The dispatch core records the goroutine that constructed each plugin
// object as its host goroutine; every emission call compares the caller
// against that recording to decide between the direct path and the
// deferral queue. The runtime does not expose goroutine IDs through a
// public API, so the ID is parsed from the first line of the goroutine's
// stack header. The cost is one small stack capture per call, paid only
// on emission entry points.
package goid

import (
	"runtime"
	"strconv"
)

// Get returns the ID of the calling goroutine.
func Get() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Header shape: "goroutine 123 [running]:"
	const prefix = len("goroutine ")
	i := prefix
	for i < n && buf[i] != ' ' {
		i++
	}
	id, err := strconv.ParseInt(string(buf[prefix:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
