package request

import "market-admin/internal/usecase/readmodel"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCredentials() readmodel.Credentials {
	return readmodel.Credentials{Email: r.Email, Password: r.Password}
}

type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	Confirmation    string `json:"password_confirmation" binding:"required"`
}

func (r ChangePasswordRequest) ToChange() readmodel.PasswordChange {
	return readmodel.PasswordChange{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.Password,
		Confirmation:    r.Confirmation,
	}
}

type RouteCheckQuery struct {
	Path string `form:"path" binding:"required"`
}
