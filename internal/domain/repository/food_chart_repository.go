package repository

import (
	"hospital-food-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodChartRepository interface {
	Create(db *gorm.DB, chart *entity.FoodChart) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FoodChart, error)
	FindAll(db *gorm.DB) ([]entity.FoodChart, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.FoodChart, error)
	Update(db *gorm.DB, chart *entity.FoodChart) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
