package pictdb

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"testing"
)

// makeJPEG encodes a solid-colour w x h JPEG, used throughout the tests as
// stand-ins for real photographs: the engine only cares about the byte
// stream and the dimensions the codec reports, not the picture content.
func makeJPEG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}

// tempDBName chdirs the test into a fresh temp directory and returns a
// short, relative database filename that fits within MaxDBName: the on-disk
// header stores the full name it's given (§3), so tests (unlike the ext4
// teacher's testdata/-relative paths) must keep it short rather than using
// t.TempDir()'s long absolute path directly.
func tempDBName(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("os.Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })
	return name
}
