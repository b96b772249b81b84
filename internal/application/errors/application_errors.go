package applicationerrors

import (
	"net/http"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrApplicantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Applicant not found",
		http.StatusNotFound,
	)
	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"Applicant has already applied for this job",
		http.StatusConflict,
	)
	ErrInvalidApplicationKey = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid applicant or job ID",
		http.StatusBadRequest,
	)
)
