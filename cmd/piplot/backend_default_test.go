//go:build !gnuplot

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaultBackendWithoutGnuplot(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "--dir", dir, "500")
	require.NoError(t, err)

	out, err := execute(t, "render", "--dir", dir, "--backend", "gonum", "500")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plot_500.png")+"\n", out)
}

func TestRenderGnuplotNotBuilt(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "--dir", dir, "500")
	require.NoError(t, err)

	_, err = execute(t, "render", "--dir", dir, "--backend", "gnuplot", "500")
	assert.True(t, errors.Is(err, errNoGnuplot), "got %v", err)
	assert.NoFileExists(t, filepath.Join(dir, "plot_500.png"))
}
