package joberrors

import (
	"fmt"
	"net/http"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrNoJobsFound = apperror.New(
		apperror.CodeNotFound,
		"No jobs found.",
		http.StatusNotFound,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
	ErrEmployerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employer not found",
		http.StatusNotFound,
	)
	ErrInvalidSkillIDs = apperror.New(
		apperror.CodeValidationError,
		"Some skill IDs are invalid",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeValidationError,
		"Salary must be a number",
		http.StatusBadRequest,
	)
	ErrSalaryOutOfRange = apperror.New(
		apperror.CodeValidationError,
		"Salary must be less than 100000000",
		http.StatusBadRequest,
	)
	ErrInvalidDeadline = apperror.New(
		apperror.CodeValidationError,
		"Invalid application deadline",
		http.StatusBadRequest,
	)
	ErrEmployerIDRequired = apperror.New(
		apperror.CodeValidationError,
		"Employer ID is required",
		http.StatusBadRequest,
	)
	ErrEmployerIDQueryRequired = apperror.New(
		apperror.CodeValidationError,
		"Please provide an employer_id.",
		http.StatusBadRequest,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employer ID",
		http.StatusBadRequest,
	)
	ErrNotJobOwner = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to delete this job",
		http.StatusForbidden,
	)
)

// NoJobsForEmployer is the 404 returned when an employer has no postings.
func NoJobsForEmployer(employerID uint) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("No jobs found for employer_id %d.", employerID),
		http.StatusNotFound,
	)
}
