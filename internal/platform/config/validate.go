package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key so that messages name the
// setting as it appears in YAML.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

// Validate checks every setting against its validate tag and returns one
// joined error naming each failing key, e.g. "leap.max_batch_size must be
// >= 1, got 0".
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	// Namespace is "Config.leap.max_batch_size"; drop the root type.
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return fmt.Errorf("%s must be set", key)
	case "min", "gte":
		return fmt.Errorf("%s must be >= %s, got %v", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Errorf("%s must be <= %s, got %v", key, fe.Param(), fe.Value())
	case "gt":
		return fmt.Errorf("%s must be > %s, got %v", key, fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Errorf("%s must not be less than %s, got %v", key, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s; got %q", key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "url":
		return fmt.Errorf("%s must be an absolute URL, got %q", key, fe.Value())
	default:
		return fmt.Errorf("%s failed %s validation", key, fe.Tag())
	}
}
