package validator

import (
	stderrors "errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/building-identifier/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their query/json name instead of the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if err := validate.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
}

// isFinite rejects NaN and ±Inf, which cannot be encoded as JSON numbers.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
	}
	return true
}

// Validate - валидация структуры. Возвращает *errors.AppError (422) со списком всех невалидных полей.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}

	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, toFieldError(fe))
	}

	return errors.NewValidationError(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func toFieldError(fe validator.FieldError) errors.FieldError {
	out := errors.FieldError{
		Field: fe.Field(),
		Rule:  fe.Tag(),
		Param: fe.Param(),
	}

	if fe.Tag() != "required" {
		out.Value = fmt.Sprintf("%v", fe.Value())
	}

	switch fe.Tag() {
	case "required":
		out.Message = "field required"
	case "finite":
		out.Message = "value is not a finite number"
	case "gte":
		out.Message = fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "gt":
		out.Message = fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "lte":
		out.Message = fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "lt":
		out.Message = fmt.Sprintf("ensure this value is less than %s", fe.Param())
	default:
		out.Message = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}

	return out
}
