//go:build !windows

package writetime

const newline = "\n"
