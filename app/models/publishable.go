package models

import "time"

// Publishable bundles the visibility flag and creation timestamp shared by
// catalog entities. Embedded by value instead of inherited.
type Publishable struct {
	IsPublished bool `gorm:"default:true;not null"`
	CreatedAt   time.Time
}
