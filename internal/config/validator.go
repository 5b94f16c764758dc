package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	layoutIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	pixelPattern    = regexp.MustCompile(`^-?\d+(px)?$`)
	presetPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z_-]*$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("layout_id", func(fl validator.FieldLevel) bool {
			return layoutIDPattern.MatchString(fl.Field().String())
		})

		// Unknown preset names are accepted here and reported by Lint.
		_ = v.RegisterValidation("width_policy", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return pixelPattern.MatchString(s) || presetPattern.MatchString(s)
		})

		_ = v.RegisterValidation("tab_variant", func(fl validator.FieldLevel) bool {
			_, ok := layout.ParseTabVariant(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d > 0
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return layouterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if doc.Tabs == nil && doc.Sidebar == nil && doc.Canvas == nil {
		return layouterrors.NewValidationError("document", "at least one of tabs, sidebar, or canvas is required", nil)
	}

	if doc.Tabs != nil {
		seen := make(map[string]int, len(doc.Tabs.Items))
		for i, tab := range doc.Tabs.Items {
			if first, exists := seen[tab.ID]; exists {
				return layouterrors.NewValidationError(
					fieldForTab(i, "id"),
					fmt.Sprintf("duplicate tab id %q (first used by tabs.items[%d])", tab.ID, first),
					nil,
				)
			}
			seen[tab.ID] = i
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into layout validation
// errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return layouterrors.NewValidationError(field, msg, err)
	}

	return layouterrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForTab(index int, field string) string {
	return fmt.Sprintf("tabs.items[%d].%s", index, field)
}

func fieldForElement(index int, field string) string {
	return fmt.Sprintf("canvas.elements[%d].%s", index, field)
}
