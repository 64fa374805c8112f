package cmd

import (
	"bytes"
	"image"
	imgcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writePNG(t *testing.T, dir string, c imgcolor.Color) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Flags(t *testing.T) {
	cmd := newRootCmd()
	tests := []struct {
		name, shorthand, def string
	}{
		{name: "out", shorthand: "o", def: "out"},
		{name: "letters", shorthand: "l", def: " ·>X"},
		{name: "size", shorthand: "s", def: "18"},
		{name: "width", shorthand: "w", def: "36"},
		{name: "print", shorthand: "p", def: "false"},
		{name: "verbose", shorthand: "v", def: "false"},
	}
	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.name)
		require.NotNil(t, f, tt.name)
		assert.Equal(t, tt.shorthand, f.Shorthand, tt.name)
		assert.Equal(t, tt.def, f.DefValue, tt.name)
	}
}

func TestRoot_Generate(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, imgcolor.White)
	out := filepath.Join(dir, "art")

	stdout, _, err := run(t, in, "-o", out, "-s", "12", "--print")
	require.NoError(t, err)

	assert.Equal(t, "XXXX\nXXXX\nXXXX\nXXXX\nGenerated "+out+".jpg\n", stdout)
	info, err := os.Stat(out + ".jpg")
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRoot_LongFlags(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, imgcolor.Black)
	out := filepath.Join(dir, "art")

	stdout, _, err := run(t, in, "--out", out, "--letters", "ab", "--size", "18.5", "--print")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aaaa\n")
	assert.FileExists(t, out+".jpg")
}

func TestRoot_Verbose(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, imgcolor.White)

	_, stderr, err := run(t, in, "-o", filepath.Join(dir, "out"), "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "decoded image")
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, imgcolor.White)
	out := filepath.Join(dir, "out")

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "no args", args: []string{}, msg: "accepts 1 arg(s)"},
		{name: "empty letters", args: []string{in, "-o", out, "-l", ""}, msg: "alphabet"},
		{name: "zero size", args: []string{in, "-o", out, "-s", "0"}, msg: "font size"},
		{name: "zero width", args: []string{in, "-o", out, "-w", "0"}, msg: "width"},
		{name: "bad size", args: []string{in, "-o", out, "-s", "big"}, msg: "invalid argument"},
		{name: "missing input", args: []string{filepath.Join(dir, "nope.png"), "-o", out}, msg: "not a valid image file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, stderr, "Error:")
			assert.NoFileExists(t, out+".jpg")
		})
	}
}
