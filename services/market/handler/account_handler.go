package handler

import (
	"net/http"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
	"carmarket-bff/services/market/helpers"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

func sessionResponse(s *session.Session, user *models.User) helpers.SessionResponse {
	resp := helpers.SessionResponse{Theme: session.ThemeLight, User: user}
	if s != nil {
		resp.Theme = s.Theme
		resp.UserID = s.UserID
	}
	return resp
}

// adopt makes s the request's session and points the cookie at it
func (h *MarketHandler) adopt(c *gin.Context, s *session.Session) {
	c.Set(session.ContextKey, s)
	h.cookie.Write(c, s)
}

// LoginHandler handles POST /auth/login
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	sess, user, err := h.accounts.Login(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, nil)
		return
	}
	h.adopt(c, sess)

	utils.JSONResponse(c, http.StatusOK, sessionResponse(sess, &user), "signed in successfully")
	helpers.LogSuccess("LoginHandler", "signed in successfully", map[string]any{"user_id": sess.UserID})
}

// SignupHandler handles POST /auth/signup
func (h *MarketHandler) SignupHandler(c *gin.Context) {
	var form forms.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	sess, user, err := h.accounts.Signup(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "SignupHandler", err, nil)
		return
	}
	h.adopt(c, sess)

	utils.JSONResponse(c, http.StatusCreated, sessionResponse(sess, &user), "account created successfully")
	helpers.LogSuccess("SignupHandler", "account created successfully", map[string]any{"user_id": sess.UserID})
}

// ForgotPasswordHandler handles POST /auth/password/forgot
func (h *MarketHandler) ForgotPasswordHandler(c *gin.Context) {
	var form forms.ForgotPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "ForgotPasswordHandler", err)
		return
	}

	if err := h.accounts.ForgotPassword(c.Request.Context(), form); err != nil {
		helpers.RespondError(c, "ForgotPasswordHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "reset link sent")
}

// ResetPasswordHandler handles POST /auth/password/reset
func (h *MarketHandler) ResetPasswordHandler(c *gin.Context) {
	var form forms.ResetPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "ResetPasswordHandler", err)
		return
	}

	if err := h.accounts.ResetPassword(c.Request.Context(), form); err != nil {
		helpers.RespondError(c, "ResetPasswordHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "password reset successfully")
}

// LogoutHandler handles POST /auth/logout
func (h *MarketHandler) LogoutHandler(c *gin.Context) {
	sess := helpers.CurrentSession(c)
	if err := h.accounts.Logout(c.Request.Context(), sess); err != nil {
		helpers.RespondError(c, "LogoutHandler", err, nil)
		return
	}
	h.cookie.Clear(c)

	utils.JSONResponse(c, http.StatusOK, nil, "signed out successfully")
	if sess != nil {
		helpers.LogSuccess("LogoutHandler", "signed out successfully", map[string]any{"user_id": sess.UserID})
	}
}

// MeHandler handles GET /me. Anonymous visitors get their theme only.
func (h *MarketHandler) MeHandler(c *gin.Context) {
	sess := helpers.CurrentSession(c)
	if !sess.Authenticated() {
		utils.JSONResponse(c, http.StatusOK, sessionResponse(sess, nil), "anonymous session")
		return
	}

	user, err := h.accounts.Me(c.Request.Context(), sess)
	if err != nil {
		helpers.RespondError(c, "MeHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, sessionResponse(sess, &user), "profile retrieved successfully")
}

// UpdateProfileHandler handles PUT /me
func (h *MarketHandler) UpdateProfileHandler(c *gin.Context) {
	var form forms.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	sess := helpers.CurrentSession(c)
	user, err := h.accounts.UpdateProfile(c.Request.Context(), sess, form)
	if err != nil {
		helpers.RespondError(c, "UpdateProfileHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, sessionResponse(sess, &user), "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user_id": user.UserID})
}

// ToggleThemeHandler handles POST /me/theme/toggle
func (h *MarketHandler) ToggleThemeHandler(c *gin.Context) {
	theme, err := h.accounts.ToggleTheme(c.Request.Context(), helpers.CurrentSession(c))
	if err != nil {
		helpers.RespondError(c, "ToggleThemeHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ThemeResponse{Theme: theme}, "theme updated")
}
