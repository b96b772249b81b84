package job

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"

	"github.com/shopspring/decimal"
)

const (
	categoryPlaceholder  = "N/A"
	employerPlaceholder  = "Unknown"
	applicantPlaceholder = "Unknown"
)

// ToJobResponse flattens a job with its preloaded relations. A missing
// category or employer is a normal state and yields a placeholder.
func ToJobResponse(j schema.Job) JobResponse {
	resp := JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Location:            j.Location,
		Benefit:             j.Benefit,
		Type:                j.Type,
		Position:            j.Position,
		Requirements:        j.Requirements,
		ApplicationDeadline: j.ApplicationDeadline,
		Salary:              salaryValue(j.Salary),
		CreateAt:            j.CreateAt,
		CategoryID:          j.CategoryID,
		Category:            categoryPlaceholder,
		Employer:            employerPlaceholder,
		SkillNames:          make([]string, 0, len(j.Skills)),
		SkillIDs:            make([]uint, 0, len(j.Skills)),
	}

	if j.Category != nil {
		resp.Category = j.Category.Name
		resp.Code = j.Category.Code
	}
	if j.Employer != nil {
		resp.Employer = j.Employer.CompanyName
		id := j.Employer.ID
		resp.EmployerID = &id
	}

	for _, s := range j.Skills {
		resp.SkillNames = append(resp.SkillNames, s.Name)
		resp.SkillIDs = append(resp.SkillIDs, s.ID)
	}
	return resp
}

func ToJobResponses(jobs []schema.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToJobResponse(j))
	}
	return out
}

func ToJobDetailResponse(j schema.Job) JobDetailResponse {
	detail := JobDetailResponse{
		JobResponse: ToJobResponse(j),
		Applicants:  make([]ApplicantResponse, 0, len(j.Applicants)),
	}

	for _, a := range j.Applicants {
		ar := ApplicantResponse{
			ID:        a.ID,
			UserName:  applicantPlaceholder,
			Email:     applicantPlaceholder,
			FirstName: applicantPlaceholder,
			LastName:  applicantPlaceholder,
		}
		if a.User != nil {
			ar.UserName = a.User.UserName
			ar.Email = a.User.Email
			ar.FirstName = a.User.FirstName
			ar.LastName = a.User.LastName
		}
		detail.Applicants = append(detail.Applicants, ar)
	}
	return detail
}

// salaryValue is nil when the job has no salary.
func salaryValue(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}
