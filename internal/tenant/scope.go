package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company's rows. Every repository query made
// on behalf of a caller goes through this; leaking across it is a security
// defect, not a business-logic bug.
func Scope(companyID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
