package auth

import (
	"net/http"
	"strconv"

	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service    Service
	production bool
	logger     *zap.Logger
}

// NewHandler builds the auth handler. In production the access token cookie
// is Secure and store error causes are not returned to clients.
func NewHandler(service Service, production bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, production: production, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err, !h.production)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
	response.SuccessWithMessage(c, http.StatusOK, "Logout success.", nil)
}

// Me echoes the verified token claims.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	if userID == 0 {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}
	response.Success(c, http.StatusOK, TokenInfo{
		ID:       userID,
		RoleID:   c.GetUint(middleware.ContextRoleID),
		Username: c.GetString(middleware.ContextUsername),
	})
}

func (h *Handler) BasicInfo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.writeServiceError(c, autherrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.BasicInfo(c.Request.Context(), uint(id))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	userID := c.GetUint(middleware.ContextUserID)
	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "SUCCESS", nil)
}
