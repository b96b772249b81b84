package auth

import "time"

type RegisterRequest struct {
	UserName  string `json:"userName" binding:"required"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	Email     string `json:"email" binding:"required,email"`
	RoleID    uint   `json:"role_id" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	// Applicant profile, used when role_id is the applicant role.
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Skills     []string `json:"skill"`

	// Employer profile, used when role_id is the employer role.
	CompanyName      string `json:"company_name"`
	CompanyAddress   string `json:"company_address"`
	CompanyIntroduce string `json:"company_introduce"`
	Position         string `json:"position"`
}

type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	ID       uint   `json:"id"`
	RoleID   uint   `json:"role_id"`
}

// TokenInfo is what the caller's verified token says about them.
type TokenInfo struct {
	ID       uint   `json:"id"`
	RoleID   uint   `json:"role_id"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreateAt  time.Time `json:"create_at"`
}

type ApplicantResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	SkillIDs   []uint `json:"skillIds"`
}

type EmployerResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	CompanyName string `json:"company_name"`
}

type RegisterResponse struct {
	User      UserResponse       `json:"user"`
	RoleID    uint               `json:"role_id"`
	Applicant *ApplicantResponse `json:"applicant,omitempty"`
	Employer  *EmployerResponse  `json:"employer,omitempty"`
}
