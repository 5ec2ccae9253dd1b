// Package validation holds the single validator instance used to check
// request payloads at the API boundary.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yoockh/facultyportal/internal/utils"
)

// percentage 0-100 with optional % sign, which also covers CGPA 0-10.
var gradePattern = regexp.MustCompile(`^(100(\.0{1,2})?|[1-9]?\d(\.\d{1,2})?)\s*%?$`)

const minYear = 1900

var (
	once     sync.Once
	instance *validator.Validate
	nowFunc  = time.Now
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
			return gradePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
			y := fl.Field().Int()
			return y >= minYear && y <= int64(nowFunc().Year())
		})
		instance = v
	})
	return instance
}

// RegisterStructRule attaches a cross-field rule to the given request
// types. Call it from package init, before the first Check.
func RegisterStructRule(fn validator.StructLevelFunc, types ...any) {
	get().RegisterStructValidation(fn, types...)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Check validates s and wraps failures as an INVALID_ARGUMENT AppError
// with one message per offending field.
func Check(op string, s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return utils.E(utils.CodeInvalidArgument, op, "invalid payload", err)
	}
	return utils.Invalid(op, Fields(verrs), err)
}

// Fields flattens validator errors into field path -> message.
func Fields(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[path(fe.Namespace())] = message(fe)
	}
	return out
}

// path drops the root struct name from a namespace.
func path(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required", "required_unless", "required_with":
		return fmt.Sprintf("%s is required", name)
	case "group":
		return fmt.Sprintf("%s is required when any %s detail is given", name, fe.Param())
	case "email":
		return "Please enter a valid email address"
	case "grade":
		return "Enter valid percentage (0-100%) or CGPA (0-10)"
	case "year":
		return fmt.Sprintf("Year must be between %d and %d", minYear, nowFunc().Year())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", name, fe.Param())
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
