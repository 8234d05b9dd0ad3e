package readmodel

import (
	"errors"

	"market-admin/internal/domain/session"
)

type LoginResult struct {
	Envelope
	Token string          `json:"token"`
	Data  session.Profile `json:"data"`
}

func (r *LoginResult) Validate() error {
	if r.Token == "" {
		return errors.New("login response has no token")
	}
	return nil
}

type Credentials struct {
	Email    string
	Password string
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"password"`
	Confirmation    string `json:"password_confirmation"`
}
