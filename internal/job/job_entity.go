package job

import (
	"strings"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
)

// toEntity builds the row for a create request. Input is trimmed and the
// required fields are re-checked because binding accepts whitespace.
func (r CreateJobRequest) toEntity(actor string) (*schema.Job, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, apperror.RequiredField("Title")
	}
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return nil, apperror.RequiredField("Description")
	}
	if r.CategoryID == 0 {
		return nil, apperror.RequiredField("Category Id")
	}
	if r.EmployerID == 0 {
		return nil, apperror.RequiredField("Employer Id")
	}

	categoryID, employerID := r.CategoryID, r.EmployerID
	job := &schema.Job{
		Title:        title,
		Description:  description,
		Location:     strings.TrimSpace(r.Location),
		Benefit:      r.Benefit,
		Type:         strings.TrimSpace(r.Type),
		Position:     strings.TrimSpace(r.Position),
		Requirements: r.Requirements,
		CategoryID:   &categoryID,
		EmployerID:   &employerID,
		Audit:        schema.Audit{CreateBy: actor, UpdateBy: actor},
	}
	if r.ApplicationDeadline != nil {
		job.ApplicationDeadline = r.ApplicationDeadline.Time
	}
	if r.Salary != nil {
		job.Salary = r.Salary.NullDecimal
	}
	return job, nil
}

// changes returns the column updates for the fields present in the request.
func (r UpdateJobRequest) changes() (map[string]any, error) {
	fields := make(map[string]any)

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return nil, apperror.RequiredField("Title")
		}
		fields["title"] = title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		if description == "" {
			return nil, apperror.RequiredField("Description")
		}
		fields["description"] = description
	}
	if r.CategoryID != nil {
		if *r.CategoryID == 0 {
			return nil, apperror.RequiredField("Category Id")
		}
		fields["category_id"] = *r.CategoryID
	}
	if r.EmployerID != nil {
		if *r.EmployerID == 0 {
			return nil, apperror.RequiredField("Employer Id")
		}
		fields["employer_id"] = *r.EmployerID
	}

	if r.Location != nil {
		fields["location"] = strings.TrimSpace(*r.Location)
	}
	if r.Benefit != nil {
		fields["benefit"] = *r.Benefit
	}
	if r.Type != nil {
		fields["type"] = strings.TrimSpace(*r.Type)
	}
	if r.Position != nil {
		fields["position"] = strings.TrimSpace(*r.Position)
	}
	if r.Requirements != nil {
		fields["requirements"] = *r.Requirements
	}
	if r.ApplicationDeadline != nil {
		fields["application_deadline"] = r.ApplicationDeadline.Time
	}
	if r.Salary != nil {
		fields["salary"] = r.Salary.NullDecimal
	}

	return fields, nil
}
