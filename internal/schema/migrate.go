package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&User{},
		&Role{},
		&UserRole{},
		&Service{},
		&Employer{},
		&Category{},
		&Position{},
		&Skill{},
		&Job{},
		&JobSkill{},
		&Applicant{},
		&ApplicantSkill{},
		&ApplyJob{},
		&OutboxEvent{},
	}
}

// SetupJoinTables binds the many2many relations to the explicit link models so
// their composite keys and cascades are used instead of gorm's generated tables.
func SetupJoinTables(db *gorm.DB) error {
	joins := []struct {
		model any
		field string
		join  any
	}{
		{&User{}, "Roles", &UserRole{}},
		{&Job{}, "Skills", &JobSkill{}},
		{&Job{}, "Applicants", &ApplyJob{}},
		{&Applicant{}, "Skills", &ApplicantSkill{}},
	}

	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return fmt.Errorf("setup join table %s: %w", j.field, err)
		}
	}
	return nil
}

// Migrate creates or updates the schema and seeds the fixed roles.
func Migrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	roles := []Role{
		{ID: RoleEmployer, Name: "employer"},
		{ID: RoleApplicant, Name: "user"},
	}
	for _, r := range roles {
		if err := db.Where(Role{ID: r.ID}).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("seed role %d: %w", r.ID, err)
		}
	}
	return nil
}
