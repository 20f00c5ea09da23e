package config

import (
	"fmt"
	"path/filepath"
)

// SinnerFolder is the input folder holding a sinner's images.
func (cfg *Config) SinnerFolder(s Sinner) string {
	return filepath.Join(cfg.InputFolder, s.Path)
}

// InputImage is laid out as <input>/<sinner>/id/<image>.
func (cfg *Config) InputImage(s Sinner, id Identity) string {
	return filepath.Join(cfg.SinnerFolder(s), "id", id.Image)
}

// OutputImage is a flat <output>/id/NN_<sinner>_NN_<image>, keeping the
// config order visible in the file names. Indexes are zero-based.
func (cfg *Config) OutputImage(sinnerIndex int, s Sinner, idIndex int, id Identity) string {
	name := fmt.Sprintf("%02d_%s_%02d_%s", sinnerIndex+1, s.Path, idIndex+1, id.Image)
	return filepath.Join(cfg.OutputFolder, "id", name)
}
