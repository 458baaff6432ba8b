// Command writetime appends a message and the current time to a log file.
//
// The filename and message are fixed at build time. To build another
// variant, override them at link time:
//
//	go build -ldflags "-X main.filename=MYFILE.TXT -X 'main.message=This program is written in C.'"
package main

import (
	"os"

	"github.com/takeshiyoshida76-cell/writetime/internal/writetime"
)

var (
	filename = writetime.DefaultFilename
	message  = writetime.DefaultMessage
)

func main() {
	// Failures are reported on stderr; the exit code stays 0.
	writetime.New(filename, message).Run(os.Stdout, os.Stderr)
}
