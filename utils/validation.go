package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidatorTagNames makes validator report fields by their json
// (or form) tag so error maps match the wire names. Called once from main
// and from test setup.
func RegisterValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// ValidationMessages flattens a binding error into the field→messages map
// the envelope carries on 422 responses.
func ValidationMessages(err error) map[string][]string {
	messages := map[string][]string{}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["body"] = []string{"The request body is invalid."}
		return messages
	}
	for _, fe := range errs {
		field := fe.Field()
		messages[field] = append(messages[field], validationMessage(field, fe))
	}
	return messages
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("The %s must contain only digits.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
