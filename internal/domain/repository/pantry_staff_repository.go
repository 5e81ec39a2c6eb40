package repository

import (
	"hospital-food-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PantryStaffRepository interface {
	Create(db *gorm.DB, staff *entity.PantryStaff) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PantryStaff, error)
	FindAll(db *gorm.DB) ([]entity.PantryStaff, error)
	// FindByRoleWithTasks preloads the assigned deliveries for every staff
	// member holding the given role.
	FindByRoleWithTasks(db *gorm.DB, role entity.StaffRole) ([]entity.PantryStaff, error)
	Update(db *gorm.DB, staff *entity.PantryStaff) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
