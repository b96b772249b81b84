package job

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"
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

// NewHandler builds the job handler. When exposeDetails is set, store error
// causes are returned in the details member of error responses.
func NewHandler(service Service, exposeDetails bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("job.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.handler")
	}
	return &Handler{service: service, exposeDetails: exposeDetails, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err, h.exposeDetails)
	h.logger.Warn("job request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetByEmployer(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("employer_id"))
	if raw == "" {
		h.writeServiceError(c, joberrors.ErrEmployerIDQueryRequired)
		return
	}
	employerID, err := parseID(raw)
	if err != nil {
		h.writeServiceError(c, joberrors.ErrInvalidEmployerID)
		return
	}
	h.logger.Debug("http get jobs by employer", zap.Uint("employer_id", employerID))

	resp, err := h.service.GetByEmployer(c.Request.Context(), employerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, joberrors.ErrInvalidJobID)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create job validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Job created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, joberrors.ErrInvalidJobID)
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update job validation failed", zap.Uint("job_id", id), zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Job updated successfully", resp)
}

// Delete takes the owning employer from the employerId query parameter, or
// from a JSON body for older clients.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, joberrors.ErrInvalidJobID)
		return
	}

	var employerID uint
	if raw := strings.TrimSpace(c.Query("employerId")); raw != "" {
		employerID, err = parseID(raw)
		if err != nil {
			h.writeServiceError(c, joberrors.ErrInvalidEmployerID)
			return
		}
	} else {
		var req DeleteJobRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		employerID = req.EmployerID
	}

	if err := h.service.Delete(c.Request.Context(), id, employerID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Job deleted successfully", nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
