package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

// messages holds the error text of tags added with RegisterValues.
var messages = map[string]string{}

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RegisterValues adds a tag that accepts a string field only when valid says so.
// Packages register their enum tags from init.
func RegisterValues(tag string, valid func(string) bool, message string) {
	if err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}); err != nil {
		panic("validator: register " + tag + ": " + err.Error())
	}
	messages[tag] = message
}

// Errors maps JSON field names to messages. It implements error so services can return it.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f + ": " + e[f])
	}
	return b.String()
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range verrs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		default:
			if msg, ok := messages[err.Tag()]; ok {
				errors[field] = msg
			} else {
				errors[field] = "Invalid value"
			}
		}
	}

	return errors
}

// Struct validates s and returns Errors, or nil when s is valid
func Struct(s interface{}) error {
	if errs := Validate(s); len(errs) > 0 {
		return Errors(errs)
	}
	return nil
}
