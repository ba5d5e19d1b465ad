package tabledef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a definition file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads one definition. Keys that do not map to a field are an error.
func Decode(r io.Reader, format Format) (*Definition, error) {
	var d Definition
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return &d, nil
			}
			var te *yaml.TypeError
			if errors.As(err, &te) && unknownFieldOnly(te) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(te.Errors, "; "))
			}
			return nil, fmt.Errorf("tabledef: decoding yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, fmt.Errorf("tabledef: decoding toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &d, nil
}

func unknownFieldOnly(te *yaml.TypeError) bool {
	for _, msg := range te.Errors {
		if !strings.Contains(msg, "not found in type") {
			return false
		}
	}
	return len(te.Errors) > 0
}

// Parse decodes a definition held in memory.
func Parse(data []byte, format Format) (*Definition, error) {
	return Decode(bytes.NewReader(data), format)
}

// LoadFile reads a definition, choosing the format from the extension.
func LoadFile(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.BaseDir = filepath.Dir(path)
	return d, nil
}
