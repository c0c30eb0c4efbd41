package account

import (
	"context"
	"fmt"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/marketapi"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
)

// Messages shown when the API fails without saying why
const (
	FallbackLoginMessage   = "failed to sign in"
	FallbackSignupMessage  = "failed to sign up"
	FallbackForgotMessage  = "failed to send reset link"
	FallbackResetMessage   = "failed to reset password"
	FallbackProfileMessage = "failed to update profile"
)

// Service covers sign in/out, password reset, the profile and the theme flag
type Service struct {
	api      marketapi.MarketplaceAPI
	sessions *session.Manager
	forms    *forms.Validator
}

// NewService creates an account Service
func NewService(api marketapi.MarketplaceAPI, sessions *session.Manager, validator *forms.Validator) *Service {
	return &Service{api: api, sessions: sessions, forms: validator}
}

// Login validates the form, exchanges it for a token and rotates the session
func (s *Service) Login(ctx context.Context, current *session.Session, form forms.LoginForm) (*session.Session, models.User, error) {
	if err := s.forms.Validate(&form); err != nil {
		return nil, models.User{}, err
	}

	res, err := s.api.Login(ctx, form)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("service: login: %w", marketerrors.Action(err, FallbackLoginMessage))
	}
	return s.begin(ctx, current, res)
}

// Signup validates the form, registers the account and signs it in
func (s *Service) Signup(ctx context.Context, current *session.Session, form forms.SignupForm) (*session.Session, models.User, error) {
	if err := s.forms.Validate(&form); err != nil {
		return nil, models.User{}, err
	}

	res, err := s.api.Signup(ctx, form)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("service: signup: %w", marketerrors.Action(err, FallbackSignupMessage))
	}
	return s.begin(ctx, current, res)
}

func (s *Service) begin(ctx context.Context, current *session.Session, res models.AuthResult) (*session.Session, models.User, error) {
	sess, err := s.sessions.SignIn(ctx, current, res.Token)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("service: %w - %v", marketerrors.ErrUnauthenticated, err)
	}
	return sess, res.User, nil
}

func (s *Service) ForgotPassword(ctx context.Context, form forms.ForgotPasswordForm) error {
	if err := s.forms.Validate(&form); err != nil {
		return err
	}
	if err := s.api.RequestPasswordReset(ctx, form); err != nil {
		return fmt.Errorf("service: forgot password: %w", marketerrors.Action(err, FallbackForgotMessage))
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, form forms.ResetPasswordForm) error {
	if err := s.forms.Validate(&form); err != nil {
		return err
	}
	if err := s.api.ResetPassword(ctx, form); err != nil {
		return fmt.Errorf("service: reset password: %w", marketerrors.Action(err, FallbackResetMessage))
	}
	return nil
}

// Logout ends the session and everything tied to it
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	return s.sessions.End(ctx, sess.ID)
}

// Me returns the signed-in user as the API sees the token
func (s *Service) Me(ctx context.Context, sess *session.Session) (models.User, error) {
	if !sess.Authenticated() {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	user, err := s.api.VerifyToken(ctx, sess)
	if err != nil {
		return models.User{}, fmt.Errorf("service: verify token: %w", err)
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, sess *session.Session, form forms.ProfileForm) (models.User, error) {
	if !sess.Authenticated() {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.User{}, err
	}
	user, err := s.api.UpdateProfile(ctx, sess, form)
	if err != nil {
		return models.User{}, fmt.Errorf("service: update profile: %w", marketerrors.Action(err, FallbackProfileMessage))
	}
	return user, nil
}

// ToggleTheme flips the session's theme and persists it
func (s *Service) ToggleTheme(ctx context.Context, sess *session.Session) (session.Theme, error) {
	if sess == nil {
		return "", fmt.Errorf("service: %w", marketerrors.ErrSessionNotFound)
	}
	theme := sess.ToggleTheme()
	if err := s.sessions.Update(ctx, sess); err != nil {
		return "", fmt.Errorf("service: save theme: %w", err)
	}
	return theme, nil
}
