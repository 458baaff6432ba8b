package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeshiyoshida76-cell/writetime/internal/writetime"
)

// main takes no writers, so these tests print to the real stdout and stderr.
// Output wording is covered by the Run tests in internal/writetime; only the
// file effect is checked here.

func TestMainAppends(t *testing.T) {
	oldFilename := filename
	t.Cleanup(func() { filename = oldFilename })
	filename = filepath.Join(t.TempDir(), "MYFILE.txt")

	main()
	main()

	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), writetime.DefaultMessage))
	assert.Equal(t, 2, strings.Count(string(b), writetime.TimePrefix))
}

func TestMainFailureReturns(t *testing.T) {
	oldFilename := filename
	t.Cleanup(func() { filename = oldFilename })
	filename = filepath.Join(t.TempDir(), "no-such-dir", "MYFILE.txt")

	// Reaching the assertion means main returned instead of exiting.
	main()
	_, err := os.Stat(filename)
	assert.True(t, os.IsNotExist(err))
}
