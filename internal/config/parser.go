package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a layout document from disk, validates it, and returns
// the resulting model.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, layouterrors.NewParseError(path, 0, err)
	}
	return DecodeDocument(path, data)
}

// DecodeDocument parses and validates document bytes. path is only used in
// error messages.
func DecodeDocument(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, layouterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ParseTheme loads a standalone theme file holding the fields of a
// document's theme block.
func ParseTheme(path string) (ThemeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ThemeSpec{}, layouterrors.NewParseError(path, 0, err)
	}

	var spec ThemeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return ThemeSpec{}, layouterrors.NewParseError(path, extractLine(err), err)
	}
	if err := validatorInstance().Struct(spec); err != nil {
		return ThemeSpec{}, convertValidationError(err)
	}
	return spec, nil
}

// Apply layers the spec over base.
func (s ThemeSpec) Apply(base components.Theme) components.Theme {
	return (&Document{Theme: s}).BuildThemeOn(base)
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
