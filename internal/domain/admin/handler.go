package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"crewsite/internal/middleware"
	"crewsite/internal/pkg/password"
	"crewsite/internal/pkg/response"
	"crewsite/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login accepts JSON or form-encoded credentials.
// POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "username and password are required")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		ExpiresAt:   res.ExpiresAt,
	})
}

// GET /api/admin/verify
func (h *Handler) Verify(c *gin.Context) {
	acct, err := h.service.CurrentAdmin(c.Request.Context(), middleware.AdminUsername(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, VerifyResponse{Username: acct.Username, Email: acct.Email, Valid: true})
}

// PUT /api/admin/update
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), middleware.AdminUsername(c), ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := UpdateProfileResponse{
		Message:  "Mis à jour",
		Username: res.Account.Username,
		Email:    res.Account.Email,
	}
	if res.AccessToken != "" {
		out.AccessToken = res.AccessToken
		out.TokenType = TokenTypeBearer
		out.ExpiresAt = &res.ExpiresAt
	}
	response.Success(c, http.StatusOK, out)
}

// PUT /api/admin/change-password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "old_password and new_password are required")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.AdminUsername(c), req.OldPassword, req.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Mot de passe changé")
}

// ForgotPassword takes the email from a JSON body, a form or the query string.
// POST /api/admin/forgot-password
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindOptionalBody(c, &req) {
		return
	}
	if req.Email == "" {
		req.Email = c.Query("email")
	}
	if req.Email == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "email is required")
		return
	}

	if err := h.service.RequestReset(c.Request.Context(), req.Email); err != nil {
		log.Error().Err(err).Msg("password reset request failed")
	}
	response.Message(c, http.StatusOK, ResetRequestedMessage)
}

// POST /api/admin/reset-password
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindOptionalBody(c, &req) {
		return
	}
	if req.Token == "" {
		req.Token = c.Query("token")
	}
	if req.NewPassword == "" {
		req.NewPassword = c.Query("new_password")
	}
	if req.Token == "" || req.NewPassword == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "token and new_password are required")
		return
	}

	if err := h.service.ConsumeReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Mot de passe réinitialisé")
}

// bindOptionalBody binds a JSON or form body when one is sent; query
// parameters fill in whatever it leaves empty. A body that fails to bind is
// rejected rather than ignored.
func bindOptionalBody(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBind(dst); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("request body rejected")
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username or password")
	case errors.Is(err, ErrAdminNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin user not found")
	case errors.Is(err, ErrNoChanges):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "No changes made")
	case errors.Is(err, ErrInvalidUsername):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username already taken")
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", "Ancien mot de passe incorrect")
	case errors.Is(err, ErrWeakPassword), errors.Is(err, password.ErrTooLong):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, ErrResetTokenInvalid):
		response.Error(c, http.StatusBadRequest, "INVALID_RESET_TOKEN", "Token invalide ou expiré")
	default:
		response.Internal(c, err)
	}
}
