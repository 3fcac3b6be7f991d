package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the identity supplied by the external auth provider. No
// credentials live here; the signed session cookie is the source of truth.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username  string `gorm:"size:100;not null;uniqueIndex"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Role      string `gorm:"size:20;default:'customer';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

const (
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// Permissions granted to staff for catalog management.
const (
	PermAddProduct     = "add_product"
	PermChangeProduct  = "change_product"
	PermDeleteProduct  = "delete_product"
	PermAddCategory    = "add_category"
	PermChangeCategory = "change_category"
	PermDeleteCategory = "delete_category"
)

// Can reports whether the user holds the given permission. Staff hold all
// catalog permissions; customers hold none.
func (u *User) Can(permission string) bool {
	if u == nil {
		return false
	}
	return u.Role == RoleStaff
}
