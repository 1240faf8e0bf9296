package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Report json field names rather than Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*ErrorResponse{{FailedField: "body", Tag: "invalid"}}
	}
	for _, fe := range verrs {
		errs = append(errs, &ErrorResponse{
			FailedField: fieldPath(fe.Namespace()),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return errs
}

// Fields flattens validation errors into a field -> tag map.
func Fields(errs []*ErrorResponse) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.FailedField] = e.Tag
	}
	return fields
}

// fieldPath drops the top-level struct name from a namespace such as
// "CreateOrderRequest.items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
