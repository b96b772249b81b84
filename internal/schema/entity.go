package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role identifiers carried in access tokens.
const (
	RoleEmployer  uint = 1
	RoleApplicant uint = 2
)

// Audit holds the actor/timestamp columns shared by every record table.
type Audit struct {
	CreateAt time.Time `gorm:"column:create_at;autoCreateTime"`
	CreateBy string    `gorm:"column:create_by;size:255"`
	UpdateAt time.Time `gorm:"column:update_at;autoUpdateTime"`
	UpdateBy string    `gorm:"column:update_by;size:255"`
}

// SoftDelete marks a row inactive instead of removing it. gorm filters
// rows with a non-null delete_at from every query on embedding models.
type SoftDelete struct {
	DeleteAt gorm.DeletedAt `gorm:"column:delete_at;index"`
	DeleteBy string         `gorm:"column:delete_by;size:255"`
}

type User struct {
	ID        uint   `gorm:"primaryKey"`
	UserName  string `gorm:"column:user_name;size:255;uniqueIndex;not null"`
	Email     string `gorm:"size:255"`
	Password  string `gorm:"size:255;not null"`
	FirstName string `gorm:"column:first_name;size:255"`
	LastName  string `gorm:"column:last_name;size:255"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"type:text"`
	Status    string `gorm:"size:50"`
	Audit
	SoftDelete

	Roles []Role `gorm:"many2many:user_role;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
	Audit
	SoftDelete
}

func (Role) TableName() string { return "roles" }

// UserRole links users to roles; the role id drives authorization.
type UserRole struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	RoleID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (UserRole) TableName() string { return "user_role" }

type Service struct {
	ID            uint                `gorm:"primaryKey"`
	ServiceName   string              `gorm:"column:service_name;size:255"`
	Price         decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	JobPostNumber int                 `gorm:"column:job_post_number"`
	Status        string              `gorm:"size:50"`
	Audit
	SoftDelete
}

func (Service) TableName() string { return "services" }

type Employer struct {
	ID               uint   `gorm:"primaryKey"`
	CompanyName      string `gorm:"column:company_name;size:255"`
	CompanyAddress   string `gorm:"column:company_address;size:255"`
	CompanyIntroduce string `gorm:"column:company_introduce;type:text"`
	Position         string `gorm:"size:255"`
	UserID           uint   `gorm:"column:user_id;uniqueIndex;not null"`
	ServiceID        *uint  `gorm:"column:service_id"`
	Audit
	SoftDelete

	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Employer) TableName() string { return "employer" }

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"size:100"`
	Name string `gorm:"size:255"`
	Audit
	SoftDelete
}

func (Category) TableName() string { return "categories" }

type Position struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255"`
	CategoryID *uint  `gorm:"column:category_id"`
	Audit
	SoftDelete

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Position) TableName() string { return "position" }

// Skill names are unique so concurrent find-or-create calls converge on one row.
type Skill struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;uniqueIndex:uq_skill_name;not null"`
	CategoryID *uint  `gorm:"column:category_id"`
	Audit
	SoftDelete

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Skill) TableName() string { return "skill" }

// Job is hard-deleted; its JobSkill and ApplyJob rows go with it through the
// FK cascades declared on the join tables.
type Job struct {
	ID                  uint                `gorm:"primaryKey"`
	Title               string              `gorm:"size:255;not null"`
	Description         string              `gorm:"type:text;not null"`
	Location            string              `gorm:"size:255"`
	Benefit             string              `gorm:"type:text"`
	Type                string              `gorm:"size:100"`
	Position            string              `gorm:"size:255"`
	ApplicationDeadline *time.Time          `gorm:"column:application_deadline"`
	Requirements        string              `gorm:"type:text"`
	Salary              decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	CategoryID          *uint               `gorm:"column:category_id;index"`
	EmployerID          *uint               `gorm:"column:employer_id;index"`
	Audit

	Category   *Category   `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Employer   *Employer   `gorm:"foreignKey:EmployerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Skills     []Skill     `gorm:"many2many:job_skill;joinForeignKey:JobID;joinReferences:SkillID"`
	Applicants []Applicant `gorm:"many2many:apply_job;joinForeignKey:JobID;joinReferences:ApplicantID"`
}

func (Job) TableName() string { return "jobs" }

type JobSkill struct {
	JobID   uint `gorm:"primaryKey;autoIncrement:false"`
	SkillID uint `gorm:"primaryKey;autoIncrement:false"`

	Job   *Job   `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Skill *Skill `gorm:"foreignKey:SkillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (JobSkill) TableName() string { return "job_skill" }

type Applicant struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"column:user_id;uniqueIndex;not null"`
	Education  string `gorm:"type:text"`
	Experience string `gorm:"type:text"`
	Audit
	SoftDelete

	User   *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Skills []Skill `gorm:"many2many:applicant_skill;joinForeignKey:ApplicantID;joinReferences:SkillID"`
}

func (Applicant) TableName() string { return "applicant" }

type ApplicantSkill struct {
	ApplicantID uint `gorm:"primaryKey;autoIncrement:false"`
	SkillID     uint `gorm:"primaryKey;autoIncrement:false"`

	Applicant *Applicant `gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Skill     *Skill     `gorm:"foreignKey:SkillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ApplicantSkill) TableName() string { return "applicant_skill" }

type ApplyJob struct {
	ApplicantID uint      `gorm:"primaryKey;autoIncrement:false"`
	JobID       uint      `gorm:"primaryKey;autoIncrement:false"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime"`

	Applicant *Applicant `gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Job       *Job       `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ApplyJob) TableName() string { return "apply_job" }
