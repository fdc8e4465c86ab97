package maniac

import (
	"io"
	"log"

	"github.com/ulikunitz/xz/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// DebugOn uses the log.Logger type to write information on the given writer.
// If w is nil no output will be written.
func DebugOn(w io.Writer) {
	if w == nil {
		debug = nil
		return
	}
	debug = log.New(w, "maniac: ", 0)
}

// DebugOff switches the debugging output off.
func DebugOff() { debug = nil }
