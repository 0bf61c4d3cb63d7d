package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Format identifies a theme document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported theme file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// ParseTheme loads a theme file from disk, validates it, and returns the resulting model.
func ParseTheme(path string) (*Theme, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, prismerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, prismerrors.NewParseError(path, 0, err)
	}

	theme, err := decode(path, data, format)
	if err != nil {
		return nil, err
	}

	if err := ValidateTheme(theme); err != nil {
		return nil, err
	}

	return theme, nil
}

// DecodeTheme decodes a document without validating it.
func DecodeTheme(data []byte, format Format) (*Theme, error) {
	return decode("", data, format)
}

func decode(path string, data []byte, format Format) (*Theme, error) {
	var theme Theme

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&theme); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, prismerrors.NewParseError(path, 0, fmt.Errorf("empty theme document"))
			}
			return nil, prismerrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&theme); err != nil {
			var decodeErr *toml.DecodeError
			if errors.As(err, &decodeErr) {
				row, column := decodeErr.Position()
				return nil, prismerrors.NewParseErrorAt(path, row, column, err)
			}
			return nil, prismerrors.NewParseError(path, 0, err)
		}
	default:
		return nil, prismerrors.NewParseError(path, 0, fmt.Errorf("unknown theme format %q", format))
	}

	return &theme, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
