//go:build debug
// +build debug

package probe

import (
	"fmt"
	"os"
)

func DebugLog(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}
