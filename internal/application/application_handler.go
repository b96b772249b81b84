package application

import (
	"net/http"
	"strconv"

	applicationerrors "github.com/NguyenBaKy2003/backend-recruitment/internal/application/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service       Service
	exposeDetails bool
	logger        *zap.Logger
}

func NewHandler(service Service, exposeDetails bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, exposeDetails: exposeDetails, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err, h.exposeDetails)
	h.logger.Warn("application request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Application submitted successfully", resp)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	applicantID, jobID, ok := applicationKey(c)
	if !ok {
		h.writeServiceError(c, applicationerrors.ErrInvalidApplicationKey)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), applicantID, jobID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Withdraw(c *gin.Context) {
	applicantID, jobID, ok := applicationKey(c)
	if !ok {
		h.writeServiceError(c, applicationerrors.ErrInvalidApplicationKey)
		return
	}

	if err := h.service.Withdraw(c.Request.Context(), applicantID, jobID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func applicationKey(c *gin.Context) (applicantID, jobID uint, ok bool) {
	a, err := strconv.ParseUint(c.Param("applicant_id"), 10, 64)
	if err != nil || a == 0 {
		return 0, 0, false
	}
	j, err := strconv.ParseUint(c.Param("job_id"), 10, 64)
	if err != nil || j == 0 {
		return 0, 0, false
	}
	return uint(a), uint(j), true
}
