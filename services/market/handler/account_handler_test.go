package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	signed := &session.Session{ID: "44444444-4444-4444-8444-444444444444", Token: "tok-u2", UserID: "U2", Theme: session.ThemeLight}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(env testEnv)
		expectedStatus int
		expectedMsg    string
		expectCookie   bool
		validateResp   func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "success_rotates_cookie",
			requestBody: forms.LoginForm{Email: "jo@example.com", Password: "Secret123!"},
			mockSetup: func(env testEnv) {
				env.accounts.EXPECT().
					Login(gomock.Any(), anonSession, forms.LoginForm{Email: "jo@example.com", Password: "Secret123!"}).
					Return(signed, models.User{UserID: "U2", Username: "jo"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "signed in successfully",
			expectCookie:   true,
			validateResp: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, "U2", data["userId"])
				require.Equal(t, "light", data["theme"])
				require.Equal(t, "jo", data["user"].(map[string]any)["username"])
			},
		},
		{
			name:        "field_errors",
			requestBody: forms.LoginForm{Email: "not-an-email"},
			mockSetup: func(env testEnv) {
				env.accounts.EXPECT().Login(gomock.Any(), anonSession, gomock.Any()).
					Return(nil, models.User{}, marketerrors.FieldErrors{
						"email":    "must be a valid email address",
						"password": "is required",
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation failed",
			validateResp: func(t *testing.T, resp map[string]any) {
				fields := resp["fields"].(map[string]any)
				require.Len(t, fields, 2)
				require.Equal(t, "is required", fields["password"])
			},
		},
		{
			name:        "wrong_credentials_show_server_message",
			requestBody: forms.LoginForm{Email: "jo@example.com", Password: "nope"},
			mockSetup: func(env testEnv) {
				env.accounts.EXPECT().Login(gomock.Any(), anonSession, gomock.Any()).
					Return(nil, models.User{}, marketerrors.Action(
						&marketerrors.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}, "failed to sign in"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name:           "invalid_json",
			requestBody:    `{"email":`,
			mockSetup:      func(env testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, anonSession)
			tt.mockSetup(env)

			w, resp := env.do(t, http.MethodPost, "/auth/login", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])

			cookie := w.Header().Get("Set-Cookie")
			if tt.expectCookie {
				require.Contains(t, cookie, "carmarket_session="+signed.ID)
				require.Contains(t, cookie, "HttpOnly")
				require.Contains(t, cookie, "SameSite=Lax")
			} else {
				require.Empty(t, cookie)
			}
			if tt.validateResp != nil {
				tt.validateResp(t, resp)
			}
		})
	}
}

func TestSignupHandler(t *testing.T) {
	env := newTestEnv(t, anonSession)
	signed := &session.Session{ID: "55555555-5555-4555-8555-555555555555", Token: "tok-u9", UserID: "U9", Theme: session.ThemeLight}
	env.accounts.EXPECT().Signup(gomock.Any(), anonSession, gomock.Any()).
		DoAndReturn(func(_ any, _ *session.Session, form forms.SignupForm) (*session.Session, models.User, error) {
			require.Equal(t, "new_user", form.Username)
			return signed, models.User{UserID: "U9", Username: form.Username}, nil
		})

	w, resp := env.do(t, http.MethodPost, "/auth/signup", map[string]any{
		"firstName": "Ana", "lastName": "Lopez", "username": "new_user",
		"email": "ana@example.com", "password": "Secret123!", "confirmPassword": "Secret123!",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "account created successfully", resp["message"])
	require.Contains(t, w.Header().Get("Set-Cookie"), "carmarket_session="+signed.ID)
}

func TestPasswordHandlers(t *testing.T) {
	t.Run("forgot_password", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.accounts.EXPECT().ForgotPassword(gomock.Any(), forms.ForgotPasswordForm{Email: "jo@example.com"}).Return(nil)

		w, resp := env.do(t, http.MethodPost, "/auth/password/forgot", `{"email":"jo@example.com"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "reset link sent", resp["message"])
	})

	t.Run("reset_password_fallback", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.accounts.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
			Return(marketerrors.Action(fmt.Errorf("dial tcp: %w", marketerrors.ErrUpstream), "failed to reset password"))

		w, resp := env.do(t, http.MethodPost, "/auth/password/reset", `{"token":"t","password":"x","confirmPassword":"x"}`)
		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Equal(t, "failed to reset password", resp["message"])
	})
}

func TestLogoutHandler(t *testing.T) {
	env := newTestEnv(t, bidderSession)
	env.accounts.EXPECT().Logout(gomock.Any(), bidderSession).Return(nil)

	w, resp := env.do(t, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "signed out successfully", resp["message"])

	cookie := w.Header().Get("Set-Cookie")
	require.True(t, strings.HasPrefix(cookie, "carmarket_session=;"), cookie)
	require.Contains(t, cookie, "Max-Age=0")
}

func TestMeHandler(t *testing.T) {
	t.Run("anonymous_gets_theme_only", func(t *testing.T) {
		env := newTestEnv(t, anonSession)

		w, resp := env.do(t, http.MethodGet, "/me", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "anonymous session", resp["message"])
		data := resp["data"].(map[string]any)
		require.Equal(t, "light", data["theme"])
		require.NotContains(t, data, "user")
		require.NotContains(t, data, "userId")
	})

	t.Run("signed_in", func(t *testing.T) {
		env := newTestEnv(t, bidderSession)
		env.accounts.EXPECT().Me(gomock.Any(), bidderSession).
			Return(models.User{UserID: "U2", Username: "bidder", ReputationScore: 12}, nil)

		w, resp := env.do(t, http.MethodGet, "/me", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "dark", data["theme"])
		require.Equal(t, 12.0, data["user"].(map[string]any)["reputationScore"])
	})

	t.Run("expired_token", func(t *testing.T) {
		env := newTestEnv(t, bidderSession)
		env.accounts.EXPECT().Me(gomock.Any(), bidderSession).
			Return(models.User{}, fmt.Errorf("service: %w", &marketerrors.APIError{Status: http.StatusUnauthorized, Path: "/auth/verify"}))

		w, _ := env.do(t, http.MethodGet, "/me", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	env := newTestEnv(t, bidderSession)
	env.accounts.EXPECT().UpdateProfile(gomock.Any(), bidderSession, gomock.Any()).
		Return(models.User{UserID: "U2", Username: "renamed"}, nil)

	w, resp := env.do(t, http.MethodPut, "/me", forms.ProfileForm{FirstName: "Jo", LastName: "Doe", Username: "renamed", Email: "jo@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "renamed", resp["data"].(map[string]any)["user"].(map[string]any)["username"])
}

func TestToggleThemeHandler(t *testing.T) {
	tests := []struct {
		name           string
		sess           *session.Session
		mockSetup      func(env testEnv)
		expectedStatus int
		expectedTheme  string
	}{
		{
			name: "light_to_dark",
			sess: anonSession,
			mockSetup: func(env testEnv) {
				env.accounts.EXPECT().ToggleTheme(gomock.Any(), anonSession).Return(session.ThemeDark, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTheme:  "dark",
		},
		{
			name: "no_session",
			mockSetup: func(env testEnv) {
				env.accounts.EXPECT().ToggleTheme(gomock.Any(), nil).
					Return(session.Theme(""), fmt.Errorf("service: %w", marketerrors.ErrSessionNotFound))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.sess)
			tt.mockSetup(env)

			w, resp := env.do(t, http.MethodPost, "/me/theme/toggle", nil)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedTheme != "" {
				require.Equal(t, tt.expectedTheme, resp["data"].(map[string]any)["theme"])
			}
		})
	}
}
