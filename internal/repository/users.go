// Package repository provides data access for recruitd's record kinds.
// Every method translates driver errors into AppErrors before they leave
// the persistence boundary.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillsenselab/recruitd/internal/database"
	"github.com/skillsenselab/recruitd/internal/models"
)

// Users provides access to user records.
type Users struct {
	db *gorm.DB
}

// NewUsers creates a user repository.
func NewUsers(db *database.DB) *Users {
	return &Users{db: db.GormDB}
}

// Create inserts a new user. A duplicate email surfaces as a conflict error.
func (r *Users) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return database.FromDatabase(err, "user")
	}
	return nil
}

// ByEmail finds a user by their sign-in email.
func (r *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, database.FromDatabase(err, "user")
	}
	return &user, nil
}

// ByID finds a user by primary key.
func (r *Users) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, database.FromDatabase(err, "user")
	}
	return &user, nil
}
