package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	controlNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("control_name", func(fl validator.FieldLevel) bool {
			return controlNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
			_, err := aspect.ParseSection(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("variation", func(fl validator.FieldLevel) bool {
			_, err := aspect.ParseVariation(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
			_, err := aspect.ParseState(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := rgb.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme performs schema and cross-field validation on a theme.
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return prismerrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	declared := make(map[string]int, len(theme.Controls))
	for i, control := range theme.Controls {
		if previous, exists := declared[control.Name]; exists {
			return prismerrors.NewValidationError(fieldForControl(i, "name"),
				fmt.Sprintf("duplicate control %q (first declared at controls[%d])", control.Name, previous), nil)
		}
		declared[control.Name] = i
	}

	if cycle := detectCycle(theme.Controls); len(cycle) > 0 {
		return prismerrors.NewValidationError("controls", fmt.Sprintf("inheritance cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	for i, hint := range theme.Hints {
		if hint.ValueCount() == 0 {
			return prismerrors.NewValidationError(fieldForHint(i, "control"),
				fmt.Sprintf("hint for %q sets no value", hint.Control), nil)
		}
	}

	return nil
}
