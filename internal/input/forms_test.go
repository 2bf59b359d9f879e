package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxfit-project/maxfit/internal/session"
)

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(LoginForm{Email: "a@b.com", Password: "secret123"}))

	err := ValidateLogin(LoginForm{Email: "not-an-email", Password: "secret123"})
	assert.ErrorContains(t, err, "email")

	err = ValidateLogin(LoginForm{Email: "a@b.com", Password: "short"})
	assert.ErrorContains(t, err, "password")

	err = ValidateLogin(LoginForm{})
	assert.ErrorContains(t, err, "required")
}

func TestValidateRegistration(t *testing.T) {
	base := RegisterForm{
		Name: "Ana", Email: "a@b.com", Password: "secret123", City: "Recife",
	}

	t.Run("trainee needs a goal", func(t *testing.T) {
		err := ValidateRegistration(session.RoleTrainee, base)
		assert.ErrorContains(t, err, "goal")

		form := base
		form.Goal = "PERDER_PESO"
		assert.NoError(t, ValidateRegistration(session.RoleTrainee, form))
	})

	t.Run("trainer needs a cref", func(t *testing.T) {
		err := ValidateRegistration(session.RoleTrainer, base)
		assert.ErrorContains(t, err, "cref")

		form := base
		form.CREF = "12345-G/PE"
		assert.NoError(t, ValidateRegistration(session.RoleTrainer, form))
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		err := ValidateRegistration(session.RoleNone, base)
		assert.Error(t, err)
	})

	t.Run("metric bounds", func(t *testing.T) {
		form := base
		form.Goal = "GANHAR_MASSA"
		form.WeightKG = 500
		assert.Error(t, ValidateRegistration(session.RoleTrainee, form))
	})
}
