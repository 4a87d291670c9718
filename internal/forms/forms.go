package forms

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is an inline, field-level validation message. A form that fails
// validation never reaches the network.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

type SignInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f SignInForm) Validate() error {

	if err := validate.Struct(f); err != nil {
		return firstFieldError(err)
	}

	return validatePassword(f.Password)
}

type RegistrationForm struct {
	FirstName string `validate:"required,min=2"`
	LastName  string `validate:"required,min=2"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

func (f RegistrationForm) Validate() error {

	if err := validate.Struct(f); err != nil {
		return firstFieldError(err)
	}

	return validatePassword(f.Password)
}

func validatePassword(password string) error {

	if len(password) < 8 {
		return &FieldError{Field: "Password", Message: "Password must be at least 8 characters"}
	}

	if len(password) > 72 {
		return &FieldError{Field: "Password", Message: "Password must not exceed 72 characters"}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return &FieldError{Field: "Password", Message: "Password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &FieldError{Field: "Password", Message: "Password must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &FieldError{Field: "Password", Message: "Password must contain at least one digit"}
	}
	if !hasSpecial {
		return &FieldError{Field: "Password", Message: "Password must contain at least one special character"}
	}

	return nil
}

func firstFieldError(err error) error {

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	message := "Invalid value for " + first.Field()
	switch first.Tag() {
	case "required":
		message = first.Field() + " is required"
	case "email":
		message = "Invalid email format"
	case "min":
		message = first.Field() + " is too short"
	}

	return &FieldError{Field: first.Field(), Message: message}
}
