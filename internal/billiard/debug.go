package billiard

import (
	"fmt"
	"sync"
)

// Debug gates debugLog output. The teacher gates its DebugLog behind a
// //go:build debug file, which means DebugLog is undefined unless built
// with -tags debug even though it's called unconditionally elsewhere in
// that package; this kernel keeps the same package-level flag idiom without
// the build tag so debugLog is always defined.
var Debug bool

func debugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func debugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
