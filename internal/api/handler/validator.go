package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// The image, year, length and age tags delegate to the domain rules so a request is
// rejected with the same error the domain would return.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("image", func(fl validator.FieldLevel) bool {
		_, err := domain.ValidateImage(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		_, err := domain.ValidateYear(int(fl.Field().Int()))
		return err == nil
	})
	_ = v.RegisterValidation("length", func(fl validator.FieldLevel) bool {
		_, err := domain.ValidateLength(int(fl.Field().Int()))
		return err == nil
	})
	_ = v.RegisterValidation("age", func(fl validator.FieldLevel) bool {
		_, err := domain.ValidateAge(int(fl.Field().Int()))
		return err == nil
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. The first failing field is
// reported as a *domain.ValidationError.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	return err
}

// fieldError converts a single FieldError into the matching domain error.
func fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return &domain.ValidationError{Field: field, Err: domain.ErrRequiredField}
	case "image":
		return &domain.ValidationError{Field: field, Err: domain.ErrInvalidImage}
	case "year":
		return &domain.ValidationError{Field: field, Err: domain.ErrInvalidYear}
	case "age":
		return &domain.ValidationError{Field: field, Err: domain.ErrInvalidAge}
	case "length":
		return &domain.ValidationError{Field: field, Err: domain.ErrInvalidLength}
	case "max":
		if field == "description" {
			return &domain.ValidationError{Field: field, Err: domain.ErrDescriptionTooLong}
		}
	}
	rule := fe.Tag()
	if p := fe.Param(); p != "" {
		rule += "=" + p
	}
	return &domain.ValidationError{Field: field, Err: fmt.Errorf("must satisfy %s", rule)}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
