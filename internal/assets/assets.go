package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF is the bundled fallback font used when no font file is configured.
var FontTTF = goregular.TTF

// LoadFont returns the TrueType bytes at path, or FontTTF when path is empty.
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return FontTTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return data, nil
}
