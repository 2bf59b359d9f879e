package api

import (
	"context"

	"github.com/maxfit-project/maxfit/internal/session"
)

// Client implements session.Authenticator: Authenticate and SignUp are the
// two remote collaborators behind the session store.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
	City  string `json:"cidade"`
}

// Authenticate exchanges credentials for a bearer token and identity.
func (c *Client) Authenticate(ctx context.Context, email, password string) (session.Credentials, error) {
	var resp loginResponse
	if err := c.post(ctx, "/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return session.Credentials{}, err
	}

	return session.Credentials{
		Token: resp.Token,
		Identity: session.Identity{
			ID:    resp.ID,
			Name:  resp.Name,
			Email: resp.Email,
			Role:  session.ParseRole(resp.Role),
			City:  resp.City,
		},
	}, nil
}

type registerRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"tipo"`
	City     string `json:"cidade"`

	// Trainee-only fields.
	WeightKG float64 `json:"peso,omitempty"`
	HeightCM float64 `json:"altura,omitempty"`
	Goal     string  `json:"objetivo,omitempty"`

	// Trainer-only fields.
	CREF      string `json:"cref,omitempty"`
	Specialty string `json:"especialidade,omitempty"`
}

// SignUp creates an account with the role-specific payload shape. It does
// not log the new account in.
func (c *Client) SignUp(ctx context.Context, role session.Role, reg session.Registration) error {
	req := registerRequest{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     role.String(),
		City:     reg.City,
	}
	switch role {
	case session.RoleTrainee:
		req.WeightKG = reg.WeightKG
		req.HeightCM = reg.HeightCM
		req.Goal = reg.Goal
	case session.RoleTrainer:
		req.CREF = reg.CREF
		req.Specialty = reg.Specialty
	}

	return c.post(ctx, "/cadastro", nil, req, nil)
}
