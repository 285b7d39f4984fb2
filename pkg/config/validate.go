package config

import (
	stderrors "errors"
	"regexp"
	"strings"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("envkey", func(fl validator.FieldLevel) bool {
		return envKeyPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	return v
}

// Validate checks cfg against its struct tags. The first failing field is
// reported in the error details.
func Validate(cfg *Config) error {
	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	graftErr := errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		graftErr.WithDetail("field", fieldErrs[0].Namespace()).
			WithDetail("rule", fieldErrs[0].Tag())
	}
	return graftErr
}
