package fakers

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Username:  faker.Username(),
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func StaffFaker(db *gorm.DB) *models.User {
	user := UserFaker(db)
	user.Role = models.RoleStaff
	return user
}
