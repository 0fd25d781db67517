package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications. The SQL
// backend applies them through gorm; the localstore backend interprets the
// concrete types directly.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
