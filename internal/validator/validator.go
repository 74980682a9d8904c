package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinValue        = "must be at least %s"
	ErrMaxValue        = "must be at most %s"
	ErrMinItems        = "must contain at least %s item(s)"
	ErrInvalidPassword = "must be 8 to 72 characters long and contain at least one letter and one digit"
	ErrInvalidIDList   = "must be a comma separated list of positive ids"
	ErrDefaultInvalid  = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("csv_ids", validateIDList)

	return validator
}

// jsonFieldName reports fields by their JSON key so errors match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 72 {
		return false
	}

	containsLetter, containsDigit := false, false

	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			containsLetter = true
		case unicode.IsDigit(ch):
			containsDigit = true
		}
	}

	return containsLetter && containsDigit
}

func validateIDList(fl validator.FieldLevel) bool {
	_, err := ParseIDList(fl.Field().String())
	return err == nil
}

// ParseIDList parses "1,2,3" into ids. An empty string yields no ids.
func ParseIDList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))

	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid id %q", p)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	isString := err.Kind().String() == "string"
	isList := err.Kind().String() == "slice"

	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min", "gte":
		switch {
		case isString:
			return fmt.Sprintf(ErrMinLength, err.Param())
		case isList:
			return fmt.Sprintf(ErrMinItems, err.Param())
		default:
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
	case "max", "lte":
		if isString {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "password":
		return ErrInvalidPassword
	case "csv_ids":
		return ErrInvalidIDList
	default:
		return ErrDefaultInvalid
	}
}
