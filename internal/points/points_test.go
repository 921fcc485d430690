package points

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderOrder(t *testing.T) {
	in := "id,y,x\n1,0.5,-0.25\n2, 1e-3 ,0.75\n"

	set, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, Point{X: -0.25, Y: 0.5}, set[0])
	assert.Equal(t, Point{X: 0.75, Y: 0.001}, set[1])
}

func TestReadHeaderCase(t *testing.T) {
	set, err := Read(strings.NewReader(" X , Y\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, Set{{X: 1, Y: 2}}, set)
}

func TestReadHeaderOnly(t *testing.T) {
	set, err := Read(strings.NewReader("x,y\n"))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		is   error
	}{
		{name: "empty", in: "", is: ErrNoHeader},
		{name: "no x", in: "a,y\n1,2\n", is: ErrMissingColumn},
		{name: "no y", in: "x,b\n1,2\n", is: ErrMissingColumn},
		{name: "nan x", in: "x,y\nNaN,0.5\n", is: ErrNotFinite},
		{name: "inf y", in: "x,y\n0.5,-Inf\n", is: ErrNotFinite},
		{name: "infinity", in: "x,y\n0,0\n+infinity,0\n", is: ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}
}

func TestReadNotFiniteLine(t *testing.T) {
	_, err := Read(strings.NewReader("x,y\n1,2\nnan,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"x"`)
}

func TestReadByteOrderMark(t *testing.T) {
	set, err := Read(strings.NewReader("\ufeffx,y\n0.5,-0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, Set{{X: 0.5, Y: -0.5}}, set)
}

func TestReadBadNumber(t *testing.T) {
	_, err := Read(strings.NewReader("x,y\n1,2\n3,oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"y"`)
}

func TestReadRaggedRow(t *testing.T) {
	_, err := Read(strings.NewReader("x,y\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "points_4000.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points_100.csv")
	want := Generate(100, 1)

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 100)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-14)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-14)
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Set{{X: 0.5, Y: -1}}))
	assert.Equal(t, "x,y\n0.5,-1\n", buf.String())
}

func TestGenerate(t *testing.T) {
	a := Generate(1000, 7)
	b := Generate(1000, 7)
	c := Generate(1000, 8)

	require.Len(t, a, 1000)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		assert.True(t, p.X >= -1 && p.X < 1, "x out of range: %v", p.X)
		assert.True(t, p.Y >= -1 && p.Y < 1, "y out of range: %v", p.Y)
	}
}

func TestSetXYer(t *testing.T) {
	s := Set{{X: 1, Y: 2}, {X: 3, Y: 4}}
	x, y := s.XY(1)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}
