package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vk/exprdocs/internal/app"
)

// fileConfig mirrors the recognized keys of exprdocs.toml.
type fileConfig struct {
	OutputDir              string `toml:"output_dir"`
	Flavor                 string `toml:"flavor"`
	SlugPrefix             string `toml:"slug_prefix"`
	IncludeStandardLibrary bool   `toml:"include_standard_library"`
	StrictIndex            bool   `toml:"strict_index"`

	meta toml.MetaData
}

func loadConfigFile(path string) (*fileConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	raw.meta = meta
	return &raw, nil
}

// applyFileConfig copies file values into the config for every key the file
// defines and the user did not set explicitly on the command line.
func applyFileConfig(cfg *app.Config, file *fileConfig, explicit map[string]bool) {
	if file.meta.IsDefined("output_dir") && !explicit["out"] {
		cfg.OutputDir = file.OutputDir
	}
	if file.meta.IsDefined("flavor") && !explicit["flavor"] {
		cfg.Flavor = file.Flavor
	}
	if file.meta.IsDefined("slug_prefix") && !explicit["slug-prefix"] {
		cfg.SlugPrefix = file.SlugPrefix
	}
	if file.meta.IsDefined("include_standard_library") && !explicit["include-std"] {
		cfg.IncludeStdLib = file.IncludeStandardLibrary
	}
	if file.meta.IsDefined("strict_index") && !explicit["strict-index"] {
		cfg.StrictIndex = file.StrictIndex
	}
}
