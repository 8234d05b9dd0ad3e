package commands

import (
	"context"
	"strings"

	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrPasswordMismatch   = errs.New("password confirmation does not match")
)

type LoginResult struct {
	Session     session.Session
	EncodedUser string
}

type AuthCommands interface {
	Login(ctx context.Context, creds readmodel.Credentials) (*LoginResult, error)
	ForgetPassword(ctx context.Context, email string) (*readmodel.Envelope, error)
	ChangePassword(ctx context.Context, change readmodel.PasswordChange) (*readmodel.Envelope, error)
}

type authCommandsImpl struct {
	gateway AuthGateway
}

func NewAuthCommands(gateway AuthGateway) AuthCommands {
	return &authCommandsImpl{gateway: gateway}
}

func (a *authCommandsImpl) Login(ctx context.Context, creds readmodel.Credentials) (*LoginResult, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrValidation)
	}

	res, err := a.gateway.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if res.Status != "" && !res.Succeeded() {
		return nil, errs.Mark(errs.New(res.Message), ErrInvalidCredentials)
	}

	profile := res.Data
	encoded, err := session.EncodeProfile(profile)
	if err != nil {
		return nil, errs.Wrap(err, "encode user profile")
	}
	return &LoginResult{
		Session:     session.Session{Token: res.Token, User: &profile},
		EncodedUser: encoded,
	}, nil
}

func (a *authCommandsImpl) ForgetPassword(ctx context.Context, email string) (*readmodel.Envelope, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errs.Mark(errs.New("email is required"), errs.ErrValidation)
	}
	return a.gateway.ForgetPassword(ctx, strings.TrimSpace(email))
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, change readmodel.PasswordChange) (*readmodel.Envelope, error) {
	if change.CurrentPassword == "" || change.NewPassword == "" {
		return nil, errs.Mark(errs.New("current and new password are required"), errs.ErrValidation)
	}
	if change.NewPassword != change.Confirmation {
		return nil, errs.Mark(ErrPasswordMismatch, errs.ErrValidation)
	}

	res, err := a.gateway.ChangePassword(ctx, change)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		return res, errs.Mark(errs.New(res.Message), ErrRejected)
	}
	return res, nil
}
