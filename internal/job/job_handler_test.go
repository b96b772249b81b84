package job_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/job"
	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"
	jobMock "github.com/NguyenBaKy2003/backend-recruitment/internal/job/mock"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func newJobRouter(svc job.Service) *gin.Engine {
	r := gin.New()
	h := job.NewHandler(svc, false)
	r.GET("/jobs/jobs", h.GetByEmployer)
	r.GET("/jobs/jobsall", h.GetAll)
	r.GET("/jobs/job/:id", h.GetByID)
	r.POST("/jobs/jobadd", h.Create)
	r.PUT("/jobs/job/:id", h.Update)
	r.DELETE("/jobs/job/:id", h.Delete)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req job.CreateJobRequest) (job.CreateJobResponse, error) {
				assert.Equal(t, []uint{1, 2}, req.SkillIDs)
				assert.True(t, req.Salary.Valid)
				assert.Equal(t, "1500.5", req.Salary.Decimal.String())
				return job.CreateJobResponse{Job: job.JobResponse{ID: 42}, Skills: []uint{1, 2}}, nil
			})

		w := doJSON(newJobRouter(svc), http.MethodPost, "/jobs/jobadd", map[string]any{
			"title":       "Backend Engineer",
			"description": "Build APIs",
			"category_id": 3,
			"employer_id": 7,
			"skill_id":    []uint{1, 2},
			"salary":      "1500.50",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		env := envelope(t, w)
		assert.True(t, env.Ok)
		assert.Equal(t, "Job created successfully", env.Message)
	})

	t.Run("missing title", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))

		w := doJSON(newJobRouter(svc), http.MethodPost, "/jobs/jobadd", map[string]any{
			"description": "Build APIs",
			"category_id": 3,
			"employer_id": 7,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required", envelope(t, w).Error)
	})

	t.Run("non numeric salary", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))

		w := doJSON(newJobRouter(svc), http.MethodPost, "/jobs/jobadd", map[string]any{
			"title":       "Backend Engineer",
			"description": "Build APIs",
			"category_id": 3,
			"employer_id": 7,
			"salary":      "lots",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, joberrors.ErrInvalidSalary.Message, envelope(t, w).Error)
	})

	t.Run("bad deadline", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))

		w := doJSON(newJobRouter(svc), http.MethodPost, "/jobs/jobadd", map[string]any{
			"title":                "Backend Engineer",
			"description":          "Build APIs",
			"category_id":          3,
			"employer_id":          7,
			"application_deadline": "31/12/2026",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, joberrors.ErrInvalidDeadline.Message, envelope(t, w).Error)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("unknown skill is a 400", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Update(gomock.Any(), uint(42), gomock.Any()).
			DoAndReturn(func(_ any, _ uint, req job.UpdateJobRequest) (job.JobResponse, error) {
				assert.Nil(t, req.Title)
				assert.Equal(t, []uint{1, 999}, *req.SkillIDs)
				return job.JobResponse{}, joberrors.ErrInvalidSkillIDs
			})

		w := doJSON(newJobRouter(svc), http.MethodPut, "/jobs/job/42", map[string]any{"skill_id": []uint{1, 999}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Some skill IDs are invalid", envelope(t, w).Error)
	})

	t.Run("explicit empty skill list is present", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Update(gomock.Any(), uint(42), gomock.Any()).
			DoAndReturn(func(_ any, _ uint, req job.UpdateJobRequest) (job.JobResponse, error) {
				assert.NotNil(t, req.SkillIDs)
				assert.Empty(t, *req.SkillIDs)
				return job.JobResponse{ID: 42}, nil
			})

		w := doJSON(newJobRouter(svc), http.MethodPut, "/jobs/job/42", map[string]any{"skill_id": []uint{}})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))

		w := doJSON(newJobRouter(svc), http.MethodPut, "/jobs/job/abc", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, joberrors.ErrInvalidJobID.Message, envelope(t, w).Error)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("employer from query", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Delete(gomock.Any(), uint(42), uint(7)).Return(nil)

		w := doJSON(newJobRouter(svc), http.MethodDelete, "/jobs/job/42?employerId=7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Job deleted successfully", envelope(t, w).Message)
	})

	t.Run("employer from body", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Delete(gomock.Any(), uint(42), uint(7)).Return(nil)

		w := doJSON(newJobRouter(svc), http.MethodDelete, "/jobs/job/42", map[string]any{"employerId": 7})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Delete(gomock.Any(), uint(42), uint(8)).Return(joberrors.ErrNotJobOwner)

		w := doJSON(newJobRouter(svc), http.MethodDelete, "/jobs/job/42?employerId=8", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Unauthorized to delete this job", envelope(t, w).Error)
	})

	t.Run("missing employer passes zero through", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Delete(gomock.Any(), uint(42), uint(0)).Return(joberrors.ErrEmployerIDRequired)

		w := doJSON(newJobRouter(svc), http.MethodDelete, "/jobs/job/42", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Employer ID is required", envelope(t, w).Error)
	})
}

func TestHandler_Reads(t *testing.T) {
	t.Run("employer_id is required", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))

		w := doJSON(newJobRouter(svc), http.MethodGet, "/jobs/jobs", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide an employer_id.", envelope(t, w).Error)
	})

	t.Run("jobs by employer", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByEmployer(gomock.Any(), uint(7)).
			Return([]job.JobResponse{{ID: 1, Category: "N/A"}}, nil)

		w := doJSON(newJobRouter(svc), http.MethodGet, "/jobs/jobs?employer_id=7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []job.JobResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "N/A", resp.Data[0].Category)
	})

	t.Run("store error hides details", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetAll(gomock.Any()).
			Return(nil, apperror.Store(assert.AnError, "Failed to fetch jobs"))

		w := doJSON(newJobRouter(svc), http.MethodGet, "/jobs/jobsall", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := envelope(t, w)
		assert.Equal(t, "Failed to fetch jobs", env.Error)
		assert.Nil(t, env.Details)
	})

	t.Run("job detail not found", func(t *testing.T) {
		svc := jobMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByID(gomock.Any(), uint(5)).Return(job.JobDetailResponse{}, joberrors.ErrJobNotFound)

		w := doJSON(newJobRouter(svc), http.MethodGet, "/jobs/job/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
