package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// convertValidationError normalizes validator errors into prism validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if value, ok := ve.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s (got %q)", msg, value)
		}
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("theme", err.Error(), err)
}

// documentFieldName drops the root type from the namespace, leaving the
// path as written in the document, for example "hints[0].states[1]".
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}
	return strings.ToLower(ns)
}

func fieldForControl(index int, field string) string {
	return fmt.Sprintf("controls[%d].%s", index, field)
}

func fieldForHint(index int, field string) string {
	return fmt.Sprintf("hints[%d].%s", index, field)
}
