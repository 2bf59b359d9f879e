// Package input validates form data before it reaches the session store,
// which by contract receives pre-validated values.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxfit-project/maxfit/internal/session"
)

var validate = validator.New()

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// RegisterForm is the sign-up form. Role decides which optional block is
// checked: trainees must pick a goal, trainers must present a CREF number.
type RegisterForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	City     string `validate:"required"`

	WeightKG float64 `validate:"omitempty,gt=0,lt=400"`
	HeightCM float64 `validate:"omitempty,gt=0,lt=260"`
	Goal     string

	CREF      string
	Specialty string
}

// ValidateLogin checks the login form.
func ValidateLogin(form LoginForm) error {
	if err := validate.Struct(form); err != nil {
		return friendly(err)
	}
	return nil
}

// ValidateRegistration checks the sign-up form against the role's rules.
func ValidateRegistration(role session.Role, form RegisterForm) error {
	if !role.Valid() {
		return fmt.Errorf("role must be %s or %s", session.RoleTrainee, session.RoleTrainer)
	}
	if err := validate.Struct(form); err != nil {
		return friendly(err)
	}

	switch role {
	case session.RoleTrainee:
		if strings.TrimSpace(form.Goal) == "" {
			return fmt.Errorf("goal is required for trainee accounts")
		}
	case session.RoleTrainer:
		if strings.TrimSpace(form.CREF) == "" {
			return fmt.Errorf("cref is required for trainer accounts")
		}
	}
	return nil
}

// friendly rewrites validator errors into messages fit for the terminal.
func friendly(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "gt", "lt":
			messages = append(messages, field+" is out of range")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
