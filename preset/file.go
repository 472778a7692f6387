package preset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// file is the on-disk layout shared by TOML and YAML preset files.
//
//	[[preset]]
//	name = "Flame"
//	colors = ["#FF0000", "#FFCC00"]
type file struct {
	Presets []Preset `toml:"preset" yaml:"presets"`
}

type codec int

const (
	codecTOML codec = iota
	codecYAML
)

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return codecTOML, nil
	case ".yaml", ".yml":
		return codecYAML, nil
	default:
		return 0, fmt.Errorf("unsupported preset file %q (want .toml, .yaml or .yml)", path)
	}
}

// ReadFile loads and validates presets from a TOML or YAML file, chosen by
// extension. A missing file yields no presets and no error.
func ReadFile(path string) ([]Preset, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var f file
	switch c {
	case codecTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case codecYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	for i, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
	}
	return f.Presets, nil
}

// WriteFile writes presets to path atomically using a temporary file and
// rename. The format follows the extension.
func WriteFile(path string, presets []Preset) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}

	f := file{Presets: presets}
	var buf bytes.Buffer
	switch c {
	case codecTOML:
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return err
		}
	case codecYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".presets-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// Load returns the built-in catalog with presets from path merged over it.
// An empty path returns the built-ins alone.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if path == "" {
		return c, nil
	}
	ps, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	c.Merge(ps)
	return c, nil
}
