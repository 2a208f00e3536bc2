package auth

import (
	"errors"
	"net/http"

	"github.com/AminElhag/Elixir/internal/api"
	"github.com/AminElhag/Elixir/internal/metrics"
	"github.com/AminElhag/Elixir/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	sessions *session.Manager
	secret   string
}

func NewHandler(service *Service, sessions *session.Manager, secret string) *Handler {
	return &Handler{service: service, sessions: sessions, secret: secret}
}

// Login godoc
// @Summary      Log in
// @Description  Mock login: any valid email/phone plus an 8+ character password succeeds after a fixed delay, unless a local account exists with a different password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginForm  true  "Credentials"
// @Success      200      {object}  LoginResult
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if fieldErrs := form.Validate(); fieldErrs != nil {
		metrics.RecordLogin("validation_failed")
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "validation failed", Fields: fieldErrs})
		return
	}

	result, err := h.service.Login(c.Request.Context(), form)
	if errors.Is(err, ErrInvalidCredentials) {
		metrics.RecordLogin("invalid")
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrInvalidCredentials.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		return
	}

	metrics.RecordLogin("success")
	metrics.RecordSessionSaved()
	c.JSON(http.StatusOK, result)
}

// Register godoc
// @Summary      Create account
// @Description  Stores the local member record. The session is only saved once OTP verification completes.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignUpForm  true  "Account details"
// @Success      201      {object}  Account
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var form SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if fieldErrs := form.Validate(); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "validation failed", Fields: fieldErrs})
		return
	}

	account, err := h.service.Register(c.Request.Context(), form)
	if errors.Is(err, ErrEmailTaken) {
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: ErrEmailTaken.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// VerifyOTP godoc
// @Summary      Verify OTP
// @Description  Completes signup: a six-digit code is accepted after a fixed delay and the session is saved.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyOTPForm  true  "OTP verification"
// @Success      200      {object}  LoginResult
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/verify-otp [post]
func (h *Handler) VerifyOTP(c *gin.Context) {
	var form VerifyOTPForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if fieldErrs := form.Validate(); fieldErrs != nil {
		metrics.RecordOTPVerification("validation_failed")
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "validation failed", Fields: fieldErrs})
		return
	}

	result, err := h.service.VerifyOTP(c.Request.Context(), form)
	if errors.Is(err, ErrInvalidOTP) {
		metrics.RecordOTPVerification("invalid")
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrInvalidOTP.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Verification failed"})
		return
	}

	metrics.RecordOTPVerification("success")
	metrics.RecordSessionSaved()
	c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the stored session. Idempotent.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Logout failed"})
		return
	}

	metrics.RecordSessionCleared()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
	TokenExpired  bool `json:"token_expired"`
	TokenValid    bool `json:"token_valid"`
}

// Status godoc
// @Summary      Session status
// @Description  Reports the reactive authenticated flag, the advisory expiry check, and whether the stored token still validates.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /auth/status [get]
func (h *Handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	resp := StatusResponse{
		Authenticated: h.sessions.IsUserAuthenticated(ctx),
		TokenExpired:  h.sessions.IsTokenExpired(ctx),
	}

	if token, ok := h.sessions.Token(ctx); ok {
		if _, err := ValidateToken(token, h.secret); err == nil {
			resp.TokenValid = true
		}
	}

	c.JSON(http.StatusOK, resp)
}

type MeResponse struct {
	UserID    *string `json:"user_id,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
}

// Me godoc
// @Summary      Current identity
// @Description  Returns the profile fields from the stored session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	var resp MeResponse
	if id, ok := h.sessions.UserID(ctx); ok {
		resp.UserID = &id
	}
	if email, ok := h.sessions.UserEmail(ctx); ok {
		resp.UserEmail = &email
	}
	if name, ok := h.sessions.UserName(ctx); ok {
		resp.UserName = &name
	}

	c.JSON(http.StatusOK, resp)
}
