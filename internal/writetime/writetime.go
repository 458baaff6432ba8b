// Package writetime appends a fixed message and the current local time to a
// log file.
package writetime

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// TimeLayout renders as yyyy/MM/dd HH:mm:ss.
	TimeLayout = "2006/01/02 15:04:05"
	// TimePrefix starts the second line of every entry.
	TimePrefix = "Current Time = "

	// DefaultFilename is the target file when none is set at build time.
	DefaultFilename = "MYFILE.txt"
	// DefaultMessage is the first line of every entry unless overridden.
	DefaultMessage = "This program is written in Go."
)

// AppendError reports a failure to open, write or close the target file.
type AppendError struct {
	Op       string
	Filename string
	Err      error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("failed to %s file %s: %v", e.Op, e.Filename, e.Err)
}

func (e *AppendError) Unwrap() error { return e.Err }

// Appender writes one two-line entry per call to Filename.
type Appender struct {
	Filename string
	Message  string

	// Clock returns the moment stamped into the entry. Nil means time.Now.
	Clock func() time.Time
}

// New returns an Appender reading the local system clock.
func New(filename, message string) *Appender {
	return &Appender{
		Filename: filename,
		Message:  message,
		Clock:    time.Now,
	}
}

// FormatTimestamp formats t with TimeLayout in t's own location.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

func (a *Appender) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

// Append adds the message line and the "Current Time = " line to the file,
// creating it if it does not exist. Any failure is returned as *AppendError.
func (a *Appender) Append() (err error) {
	nowtime := FormatTimestamp(a.now())

	// Open the file in append mode. Create it if it doesn't exist.
	file, err := os.OpenFile(a.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &AppendError{Op: "open", Filename: a.Filename, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &AppendError{Op: "close", Filename: a.Filename, Err: cerr}
		}
	}()

	// Both lines are buffered so they reach the file in a single write.
	w := bufio.NewWriter(file)
	w.WriteString(a.Message)
	w.WriteString(newline)
	w.WriteString(TimePrefix)
	w.WriteString(nowtime)
	w.WriteString(newline)
	if err := w.Flush(); err != nil {
		return &AppendError{Op: "write", Filename: a.Filename, Err: err}
	}

	return nil
}

// Run appends one entry and reports the outcome: a confirmation on stdout, or
// an error line and its details on stderr. The error is returned for callers
// that want it; Run itself never panics or exits.
func (a *Appender) Run(stdout, stderr io.Writer) error {
	if err := a.Append(); err != nil {
		fmt.Fprintf(stderr, "ERROR: An error occurred while writing to the file %s.\n", a.Filename)
		details := errors.Unwrap(err)
		if details == nil {
			details = err
		}
		fmt.Fprintf(stderr, "Details: %v\n", details)
		return err
	}

	fmt.Fprintf(stdout, "Successfully appended log to %s.\n", a.Filename)
	return nil
}
