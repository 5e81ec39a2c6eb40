package repository

import (
	"hospital-food-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(db *gorm.DB, delivery *entity.Delivery) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Delivery, error)
	FindAll(db *gorm.DB) ([]entity.Delivery, error)
	Update(db *gorm.DB, delivery *entity.Delivery) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	// UnassignByStaffID clears the assignee from every delivery referencing
	// the staff member. Returns the number of rows updated.
	UnassignByStaffID(db *gorm.DB, staffID uuid.UUID) (int64, error)
}
