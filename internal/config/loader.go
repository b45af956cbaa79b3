package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "breakout.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A missing file falls through to the next location; a file that exists but
// does not parse or validate is an error. The returned config has passed Validate.
func Load(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path)
		if err != nil {
			return BreakoutConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultBreakoutYAML, BreakoutConfig{})
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses path. found is false when the file does not exist.
func loadFile(path string) (cfg BreakoutConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return BreakoutConfig{}, false, nil
	}
	if err != nil {
		return BreakoutConfig{}, true, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return BreakoutConfig{}, true, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (BreakoutConfig, error) {
	cfg, err := decode(data, DefaultBreakoutConfig())
	if err != nil {
		return BreakoutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// entryOverrides holds the raw map entries of a document so they can be
// decoded over the existing entry instead of a zero value.
type entryOverrides struct {
	BrickTypes map[string]yaml.Node `yaml:"brick_types"`
	Sprites    map[string]yaml.Node `yaml:"sprites"`
}

// decode unmarshals data on top of base. Unknown keys are rejected.
// Entries of brick_types and sprites are merged field by field, so an entry
// only needs the fields it changes. An empty document leaves base unchanged.
func decode(data []byte, base BreakoutConfig) (BreakoutConfig, error) {
	cfg := base
	cfg.BrickTypes = maps.Clone(base.BrickTypes)
	cfg.Sprites = maps.Clone(base.Sprites)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BreakoutConfig{}, err
	}

	var over entryOverrides
	if err := yaml.Unmarshal(data, &over); err != nil {
		return BreakoutConfig{}, err
	}
	var err error
	if cfg.BrickTypes, err = mergeEntries(base.BrickTypes, cfg.BrickTypes, over.BrickTypes); err != nil {
		return BreakoutConfig{}, fmt.Errorf("brick_types: %w", err)
	}
	if cfg.Sprites, err = mergeEntries(base.Sprites, cfg.Sprites, over.Sprites); err != nil {
		return BreakoutConfig{}, fmt.Errorf("sprites: %w", err)
	}
	return cfg, nil
}

// mergeEntries re-decodes every overridden entry on top of its base value.
// Entries that are new in the document are kept as decoded.
func mergeEntries[T any](base, decoded map[string]T, nodes map[string]yaml.Node) (map[string]T, error) {
	if len(nodes) == 0 {
		return decoded, nil
	}

	out := make(map[string]T, len(base)+len(decoded))
	maps.Copy(out, base)
	for name, entry := range decoded {
		if _, ok := base[name]; !ok {
			out[name] = entry
		}
	}
	for name, node := range nodes {
		entry, ok := base[name]
		if !ok {
			continue
		}
		if err := node.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = entry
	}
	return out, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
