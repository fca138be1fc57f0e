package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/store"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// AuthService wraps the Supabase auth provider. The application only
// consumes the resulting identity: after a successful sign-in or
// sign-up the name and phone are merged into the local user record.
type AuthService struct {
	supabase *supabase.Client
	local    *store.LocalStore
	logger   *slog.Logger
}

func NewAuthService(supabaseClient *supabase.Client, local *store.LocalStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		supabase: supabaseClient,
		local:    local,
		logger:   logger,
	}
}

func (as *AuthService) SignUp(ctx context.Context, email, password, fullName string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}

	req := types.SignupRequest{
		Email:    email,
		Password: password,
	}
	if fullName != "" {
		req.Data = map[string]interface{}{"full_name": fullName}
	}

	res, err := as.supabase.Auth.Signup(req)
	if err != nil {
		if strings.Contains(err.Error(), "User already Registered") {
			return nil, fmt.Errorf("email already in use")
		}
		return nil, fmt.Errorf("failed to create account")
	}

	as.syncIdentity(ctx, fullName, email, "")
	return res, nil
}

func (as *AuthService) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}

	resp, err := as.supabase.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	fullName := ""
	if v, ok := resp.User.UserMetadata["full_name"].(string); ok {
		fullName = v
	}
	as.syncIdentity(ctx, fullName, resp.User.Email, resp.User.Phone)

	return resp, nil
}

func (as *AuthService) RefreshToken(refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	resp, err := as.supabase.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return resp, nil
}

func (as *AuthService) ResetPassword(ctx context.Context, email string) error {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email format: %v", err)
	}
	if err := as.supabase.Auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return fmt.Errorf("failed to send password reset email: %v", err)
	}
	return nil
}

func (as *AuthService) ResendVerification(ctx context.Context, email string) error {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email format: %v", err)
	}
	if err := as.supabase.Auth.OTP(types.OTPRequest{Email: email, CreateUser: false}); err != nil {
		return fmt.Errorf("failed to resend verification email: %v", err)
	}
	return nil
}

// syncIdentity merges the authenticated identity into the local user
// record. A missing record is not an error: the store seeds one on
// startup, and an update never creates a user from nothing.
func (as *AuthService) syncIdentity(ctx context.Context, fullName, email, phone string) {
	name := fullName
	if name == "" {
		name = email
	}
	if name == "" {
		name = "User"
	}

	update := models.UserUpdate{Name: &name}
	if phone != "" {
		update.Phone = &phone
	}

	if _, err := as.local.UpdateUser(ctx, update); err != nil {
		as.logger.Info("Skipped identity sync into local user record", "error", err)
	}
}
