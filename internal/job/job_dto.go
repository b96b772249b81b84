package job

import (
	"bytes"
	"strings"
	"time"

	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// maxSalary bounds the decimal(10,2) column: eight integer digits.
var maxSalary = decimal.New(1, 8)

// Salary accepts a JSON number or a numeric string. An empty string or null
// means no salary.
type Salary struct {
	decimal.NullDecimal
}

func (s *Salary) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		s.NullDecimal = decimal.NullDecimal{}
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return joberrors.ErrInvalidSalary
	}
	if d.Abs().GreaterThanOrEqual(maxSalary) {
		return joberrors.ErrSalaryOutOfRange
	}
	s.NullDecimal = decimal.NullDecimal{Decimal: d, Valid: true}
	return nil
}

// Deadline accepts "2006-01-02" or RFC 3339. An empty string means no deadline.
type Deadline struct {
	Time *time.Time
}

func (d *Deadline) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		d.Time = nil
		return nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = &t
			return nil
		}
	}
	return joberrors.ErrInvalidDeadline
}

type CreateJobRequest struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description" binding:"required"`
	Location            string    `json:"location"`
	Benefit             string    `json:"benefit"`
	Type                string    `json:"type"`
	Position            string    `json:"position"`
	Requirements        string    `json:"requirements"`
	ApplicationDeadline *Deadline `json:"application_deadline"`
	Salary              *Salary   `json:"salary"`
	CategoryID          uint      `json:"category_id" binding:"required"`
	EmployerID          uint      `json:"employer_id" binding:"required"`
	SkillIDs            []uint    `json:"skill_id"`
}

// UpdateJobRequest distinguishes omitted fields (nil, left unchanged) from
// present ones, which are written even when empty. SkillIDs replaces the
// whole skill set when present, including an explicit empty list.
type UpdateJobRequest struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	Location            *string   `json:"location"`
	Benefit             *string   `json:"benefit"`
	Type                *string   `json:"type"`
	Position            *string   `json:"position"`
	Requirements        *string   `json:"requirements"`
	ApplicationDeadline *Deadline `json:"application_deadline"`
	Salary              *Salary   `json:"salary"`
	CategoryID          *uint     `json:"category_id"`
	EmployerID          *uint     `json:"employer_id"`
	SkillIDs            *[]uint   `json:"skill_id"`
}

type DeleteJobRequest struct {
	EmployerID uint `json:"employerId"`
}

type JobResponse struct {
	ID                  uint       `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Benefit             string     `json:"benefit"`
	Type                string     `json:"type"`
	Position            string     `json:"position"`
	Requirements        string     `json:"requirements"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Salary              *float64   `json:"salary"`
	CreateAt            time.Time  `json:"create_at"`
	CategoryID          *uint      `json:"category_id"`
	Category            string     `json:"category"`
	Code                string     `json:"code"`
	EmployerID          *uint      `json:"employerId"`
	Employer            string     `json:"employer"`
	SkillNames          []string   `json:"skillNames"`
	SkillIDs            []uint     `json:"skillIds"`
}

type ApplicantResponse struct {
	ID        uint   `json:"id"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type JobDetailResponse struct {
	JobResponse
	Applicants []ApplicantResponse `json:"applicants"`
}

type CreateJobResponse struct {
	Job    JobResponse `json:"job"`
	Skills []uint      `json:"skills"`
}
