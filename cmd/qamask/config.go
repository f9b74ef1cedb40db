package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cliDefaults are the fallback levels used when a command's level flag is
// left empty. They come from the optional --config yaml file.
type cliDefaults struct {
	Confidence   string `yaml:"confidence"`
	Quality      string `yaml:"quality"`
	VisibleMasks bool   `yaml:"visible_masks"`
}

func defaultCLIDefaults() cliDefaults {
	return cliDefaults{
		Confidence: "high",
		Quality:    "high",
	}
}

func loadDefaults(path string) (cliDefaults, error) {
	d := defaultCLIDefaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}
