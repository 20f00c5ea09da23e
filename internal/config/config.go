package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	EnvInputDir  = "TIERGEN_INPUT_DIR"
	EnvOutputDir = "TIERGEN_OUTPUT_DIR"
	EnvAssetDir  = "TIERGEN_ASSET_DIR"
	EnvFont      = "TIERGEN_FONT"

	DefaultPath = "./config.toml"
)

// Config is a loaded sinner list with every folder resolved against the
// directory of the config file.
type Config struct {
	Sinners []Sinner `toml:"sinner"`

	InputFolder  string `toml:"input_sinner_folder"`
	OutputFolder string `toml:"output_sinner_folder"`
	AssetFolder  string `toml:"asset_folder"`
	Font         string `toml:"font"`

	// Root is the directory containing the config file.
	Root string `toml:"-"`
}

// Sinner is one character and its identities.
type Sinner struct {
	Name       string     `toml:"name"`
	Path       string     `toml:"path"`
	Identities []Identity `toml:"id"`
}

// Identity is one variant of a sinner.
// Rarity is checked by the renderer, not here.
type Identity struct {
	Name   string `toml:"name"`
	Rarity int    `toml:"rarity"`
	Image  string `toml:"image"`
}

// Load reads the TOML file at path, applies environment overrides and
// resolves folders relative to the file's directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s (pass the config path as the first argument): %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Root = filepath.Dir(path)
	cfg.applyEnv()
	cfg.resolve()
	return cfg, nil
}

// Parse decodes and validates TOML without touching the filesystem.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every sinner and identity names what it needs to be
// rendered.
func (cfg *Config) Validate() error {
	if len(cfg.Sinners) == 0 {
		return errors.New("no [[sinner]] entries")
	}
	var errs []error
	for i, s := range cfg.Sinners {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sinner #%d: missing name", i+1))
		}
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("sinner #%d (%s): missing path", i+1, s.Name))
		}
		for j, id := range s.Identities {
			if id.Name == "" {
				errs = append(errs, fmt.Errorf("sinner %q id #%d: missing name", s.Name, j+1))
			}
			if id.Image == "" {
				errs = append(errs, fmt.Errorf("sinner %q id #%d (%s): missing image", s.Name, j+1, id.Name))
			}
		}
	}
	return errors.Join(errs...)
}

func (cfg *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvInputDir:  &cfg.InputFolder,
		EnvOutputDir: &cfg.OutputFolder,
		EnvAssetDir:  &cfg.AssetFolder,
		EnvFont:      &cfg.Font,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

func (cfg *Config) resolve() {
	if cfg.InputFolder == "" {
		cfg.InputFolder = "input"
	}
	if cfg.OutputFolder == "" {
		cfg.OutputFolder = "output"
	}
	if cfg.AssetFolder == "" {
		cfg.AssetFolder = "asset"
	}
	cfg.InputFolder = cfg.join(cfg.InputFolder)
	cfg.OutputFolder = cfg.join(cfg.OutputFolder)
	cfg.AssetFolder = cfg.join(cfg.AssetFolder)
	if cfg.Font != "" {
		cfg.Font = cfg.join(cfg.Font)
	}
}

func (cfg *Config) join(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.Root, p)
}
