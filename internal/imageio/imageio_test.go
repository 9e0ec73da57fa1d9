package imageio

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestCache_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "a.png", 20, 10)

	cache := NewCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load hits the cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("load after evict should fail for a deleted file")
	}
}

func TestCache_LoadMissing(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("Load should fail for missing file")
	}
}

func TestLoadInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "b.png", 64, 32)

	info, err := LoadInfo(NewCache(), path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Width != 64 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}

	// gcd(64,32)=32: divisible by 2,4,8,16,32 but not 14, 28, or 64.
	want := []int{2, 4, 8, 16, 32}
	if len(info.DivisibleBy) != len(want) {
		t.Fatalf("DivisibleBy: got %v, want %v", info.DivisibleBy, want)
	}
	for i, m := range want {
		if info.DivisibleBy[i] != m {
			t.Fatalf("DivisibleBy: got %v, want %v", info.DivisibleBy, want)
		}
	}
}

func TestLoadInfo_OddDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "c.png", 63, 31)

	info, err := LoadInfo(NewCache(), path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}
	if len(info.DivisibleBy) != 0 {
		t.Errorf("DivisibleBy: got %v, want empty", info.DivisibleBy)
	}
}

func TestEncodeBase64PNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	s, err := EncodeBase64PNG(img)
	if err != nil {
		t.Fatalf("EncodeBase64PNG failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Error("payload is not a PNG stream")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg"} {
		path := filepath.Join(dir, name)
		if err := Save(img, path); err != nil {
			t.Errorf("Save(%s) failed: %v", name, err)
			continue
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Save(%s) wrote no file: %v", name, err)
		}
	}

	if err := Save(img, filepath.Join(dir, "out.bmp")); err == nil {
		t.Error("Save should reject unsupported extensions")
	}
}
