package storeapi

import (
	"context"
	"net/http"
	"strings"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

// AdminLogin exchanges credentials for the admin token. The token is parsed
// into an Authority by pkg/auth; this client never inspects it.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	var resp adminLoginResponse
	err := c.do(ctx, "admin_login", http.MethodPost, "/api/admin/login", adminLoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "backend returned an empty token")
	}
	return resp.Token, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type changePasswordResponse struct {
	Success bool `json:"success"`
}

// ChangeAdminPassword rotates the admin credential. The session token from
// AdminLogin authorizes the call.
func (c *Client) ChangeAdminPassword(ctx context.Context, token, currentPassword, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin token is required")
	}
	if currentPassword == "" || newPassword == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "current and new passwords are required")
	}
	if len(newPassword) < 6 {
		return pkgerrors.New(pkgerrors.CodeValidation, "new password must be at least 6 characters")
	}

	var resp changePasswordResponse
	body := changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := c.doAuthed(ctx, "change_admin_password", http.MethodPost, "/api/admin/change-password", token, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return pkgerrors.New(pkgerrors.CodeDependency, "backend did not confirm the password change")
	}
	return nil
}
