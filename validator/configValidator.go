package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// report the env name instead of the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("env"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// RequiredSettings checks the `validate` tags of a settings struct and reports
// the first missing value the way an unset environment variable is reported.
func RequiredSettings(settings interface{}) error {
	err := validate.Struct(settings)
	if err == nil {
		return nil
	}
	var errs playground.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%s environment variable not set", fe.Field())
	}
	return fmt.Errorf("%s environment variable is invalid", fe.Field())
}
