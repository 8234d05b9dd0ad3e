package adminapi

import (
	"context"
	"net/http"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/usecase/readmodel"
)

// AuthAPI forwards credential flows; tokens are always issued by the backend.
type AuthAPI struct {
	client Requester
}

func NewAuthAPI(client Requester) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Login(ctx context.Context, creds readmodel.Credentials) (*readmodel.LoginResult, error) {
	body, err := formBody(map[string]string{"email": creds.Email, "password": creds.Password}, nil)
	if err != nil {
		return nil, err
	}
	var out readmodel.LoginResult
	if err := a.client.Do(ctx, http.MethodPost, "/login", apiclient.RequestOptions{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) ForgetPassword(ctx context.Context, email string) (*readmodel.Envelope, error) {
	body, err := formBody(map[string]string{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	var out readmodel.Envelope
	if err := a.client.Do(ctx, http.MethodPost, "/forget-password", apiclient.RequestOptions{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) ChangePassword(ctx context.Context, change readmodel.PasswordChange) (*readmodel.Envelope, error) {
	var out readmodel.Envelope
	if err := a.client.Do(ctx, http.MethodPost, "/change-password", apiclient.RequestOptions{Body: change}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
