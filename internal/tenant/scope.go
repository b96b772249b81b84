package tenant

import "gorm.io/gorm"

// EmployerScope restricts a query to rows owned by one employer.
func EmployerScope(employerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employer_id = ?", employerID)
	}
}
