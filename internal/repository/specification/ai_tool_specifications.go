package specification

import "gorm.io/gorm"

// ByCategory filters catalog entries by category.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// NotDeletedFlag excludes soft-flagged catalog entries (the catalog uses an
// explicit boolean column rather than gorm soft deletes).
type NotDeletedFlag struct{}

func (s NotDeletedFlag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = false")
}

// NameContains applies a case-insensitive keyword match on the entry name.
type NameContains struct {
	Keyword string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Keyword+"%")
}
