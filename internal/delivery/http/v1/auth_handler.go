package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	auth := public.Group("/auth")
	{
		loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg))
		auth.POST("/register", loginLimit, handler.Register)
		auth.POST("/login", loginLimit, handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/password-reset", handler.RequestPasswordReset)
		auth.GET("/password-reset/:token", handler.ValidateResetToken)
		auth.POST("/password-reset/:token", handler.ResetPassword)
	}

	protected.GET("/auth/me", handler.Me)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type NewPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates the account and its role-tagged profile, then signs the caller in. The response's next field points at the profile completion step for the chosen role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration  body      domain.RegisterInput  true  "Registration form"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusCreated, "Account created", result)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates by username and password. The next field routes incomplete profiles to their completion step.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusOK, "Logged in", result)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie. Bearer clients simply drop the token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

// RequestPasswordReset godoc
// @Summary      Request a password reset
// @Description  Mails a single-use reset link. Always responds with success so the endpoint cannot be used to probe which emails exist.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      PasswordResetRequest  true  "Account email"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "If that email exists, a reset link has been sent", nil)
}

// ValidateResetToken godoc
// @Summary      Validate a reset token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Reset token"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/password-reset/{token} [get]
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	if err := h.authUC.ValidateResetToken(c.Request.Context(), c.Param("token")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Token is valid", nil)
}

// ResetPassword godoc
// @Summary      Reset the password
// @Description  Consumes the reset token and stores the new password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path      string              true  "Reset token"
// @Param        request  body      NewPasswordRequest  true  "New password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/password-reset/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset", nil)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	secure := c.Request.TLS != nil
	c.SetCookie("auth_token", token, int(h.cfg.TokenTTL.Seconds()), "/", "", secure, true)
}
