package utils

import (
	"Foodgram-Backend/domain"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	initValidatorOnce sync.Once

	// ruleErrors holds the reason reported for each custom rule.
	ruleErrors = map[string]error{
		"tagcolor": ErrInvalidFormat,
		"letters":  ErrInvalidCharacters,
		"notme":    ErrReservedValue,
		"username": ErrInvalidUsername,
		"slug":     ErrInvalidSlug,
	}
)

// InitValidator builds the shared validator and registers the field rules
// used by request DTOs: tagcolor, letters, notme, username and slug.
func InitValidator() {
	initValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		mustRegister(v, "tagcolor", ValidateTagColor)
		mustRegister(v, "letters", ValidateLettersOnly)
		mustRegister(v, "notme", ValidateReservedUsername)
		mustRegister(v, "username", ValidateUsername)
		mustRegister(v, "slug", ValidateSlug)
		Validate = v
	})
}

func mustRegister(v *validator.Validate, tag string, fn func(string) error) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String()) == nil
	})
	if err != nil {
		panic(err)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// TranslateValidation turns the first failed rule of a validator error into a
// *domain.ValidationError. Custom rules report their own reason; other errors
// pass through unchanged.
func TranslateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if reason, ok := ruleErrors[fe.Tag()]; ok {
		return domain.NewValidationError(reason.Error())
	}

	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "max":
		return domain.NewValidationError(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "min":
		return domain.NewValidationError(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	default:
		return domain.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
