package auth

import (
	"strings"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
)

const statusActive = "active"

func (r RegisterRequest) toUser(passwordHash string) *schema.User {
	userName := strings.TrimSpace(r.UserName)
	return &schema.User{
		UserName:  userName,
		Email:     strings.TrimSpace(r.Email),
		Password:  passwordHash,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Phone:     strings.TrimSpace(r.Phone),
		Address:   r.Address,
		Status:    statusActive,
		Audit:     schema.Audit{CreateBy: userName, UpdateBy: userName},
	}
}

func (r RegisterRequest) toEmployer(user *schema.User) *schema.Employer {
	return &schema.Employer{
		CompanyName:      strings.TrimSpace(r.CompanyName),
		CompanyAddress:   strings.TrimSpace(r.CompanyAddress),
		CompanyIntroduce: r.CompanyIntroduce,
		Position:         strings.TrimSpace(r.Position),
		UserID:           user.ID,
		Audit:            user.Audit,
	}
}

func (r RegisterRequest) toApplicant(user *schema.User) *schema.Applicant {
	return &schema.Applicant{
		UserID:     user.ID,
		Experience: r.Experience,
		Education:  r.Education,
		Audit:      user.Audit,
	}
}

// skillNames trims the free-text skills and drops blanks and repeats.
func (r RegisterRequest) skillNames() []string {
	seen := make(map[string]struct{}, len(r.Skills))
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func toUserResponse(u *schema.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Status:    u.Status,
		CreateAt:  u.CreateAt,
	}
}
