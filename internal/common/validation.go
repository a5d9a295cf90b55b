package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared struct validator. Field names in reported
// violations use the `json` tag so they match the wire format.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the shared validator against v and converts any
// failures into violations. A nil result means v is valid.
func ValidateStruct(v any) []Violation {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: "", Constraint: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:      fieldPath(fe.Namespace()),
			Constraint: describeConstraint(fe.Tag(), fe.Param()),
		})
	}
	return violations
}

// fieldPath drops the root type name from a validator namespace,
// "ClassificationResult.confidence" becomes "confidence".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describeConstraint(tag, param string) string {
	switch tag {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.Join(strings.Fields(param), ", "))
	case "gt":
		return "must be > " + param
	case "gte":
		return "must be >= " + param
	case "lt":
		return "must be < " + param
	case "lte":
		return "must be <= " + param
	case "min":
		return "length must be at least " + param
	case "max":
		return "length must be at most " + param
	case "len":
		return "length must be " + param
	case "email":
		return "must be an email address"
	case "uppercase":
		return "must be uppercase"
	case "alpha":
		return "must contain only letters"
	default:
		if param != "" {
			return fmt.Sprintf("%s=%s", tag, param)
		}
		return tag
	}
}
