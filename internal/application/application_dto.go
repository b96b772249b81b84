package application

import (
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
)

type ApplyRequest struct {
	ApplicantID uint `json:"applicant_id" binding:"required"`
	JobID       uint `json:"job_id" binding:"required"`
}

type ApplicationResponse struct {
	ApplicantID   uint      `json:"applicant_id"`
	JobID         uint      `json:"job_id"`
	JobTitle      string    `json:"job_title,omitempty"`
	ApplicantName string    `json:"applicant_name,omitempty"`
	CreateAt      time.Time `json:"create_at"`
}

func toResponse(a schema.ApplyJob) ApplicationResponse {
	resp := ApplicationResponse{
		ApplicantID: a.ApplicantID,
		JobID:       a.JobID,
		CreateAt:    a.CreateAt,
	}
	if a.Job != nil {
		resp.JobTitle = a.Job.Title
	}
	if a.Applicant != nil && a.Applicant.User != nil {
		resp.ApplicantName = a.Applicant.User.UserName
	}
	return resp
}

func toResponses(apps []schema.ApplyJob) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toResponse(a))
	}
	return out
}
