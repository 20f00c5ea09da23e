package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFontDefault(t *testing.T) {
	data, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if !bytes.Equal(data, FontTTF) || len(data) == 0 {
		t.Fatal("expected bundled font bytes")
	}
}

func TestLoadFontFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, []byte("not really a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if string(data) != "not really a font" {
		t.Fatalf("got %q", data)
	}
}

func TestLoadFontMissing(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatal("expected error for missing font")
	}
}
