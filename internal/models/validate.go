package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/AnshRaj112/cinnamon-backend/internal/highlight"
	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	choices := map[string]func(validator.FieldLevel) bool{
		"status":           func(fl validator.FieldLevel) bool { return Status(fl.Field().String()).Valid() },
		"creator_type":     func(fl validator.FieldLevel) bool { return CreatorType(fl.Field().String()).Valid() },
		"challenge_action": func(fl validator.FieldLevel) bool { return ChallengeAction(fl.Field().String()).Valid() },
		"challenge_state":  func(fl validator.FieldLevel) bool { return ChallengeState(fl.Field().Int()).Valid() },
		"completion":       func(fl validator.FieldLevel) bool { return Completion(fl.Field().String()).Valid() },
		"language":         func(fl validator.FieldLevel) bool { return highlight.IsLanguage(fl.Field().String()) },
		"style":            func(fl validator.FieldLevel) bool { return highlight.IsStyle(fl.Field().String()) },
	}
	for tag, fn := range choices {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Validate checks struct tags and reports the first failing field as a
// *utils.ValidationError.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &utils.ValidationError{Field: fieldPath(fe.Namespace()), Message: fieldMessage(fe)}
}

// fieldPath drops the root struct name: "Challenge.log[0].mood" -> "log[0].mood".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx != -1 {
		return namespace[idx+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "url":
		return "Enter a valid URL."
	case "uuid":
		return fmt.Sprintf("%q is not a valid user id.", fe.Value())
	case "status", "creator_type", "challenge_action", "challenge_state", "completion", "language", "style":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(choiceValue(fe.Value())))
	}
	return fmt.Sprintf("Failed %s validation.", fe.Tag())
}

func choiceValue(v interface{}) interface{} {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
