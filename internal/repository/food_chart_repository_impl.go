package repository

import (
	"errors"

	"hospital-food-service/internal/domain/entity"
	domainRepo "hospital-food-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type foodChartRepository struct{}

func NewFoodChartRepository() domainRepo.FoodChartRepository {
	return &foodChartRepository{}
}

func (r *foodChartRepository) Create(db *gorm.DB, chart *entity.FoodChart) error {
	return db.Create(chart).Error
}

func (r *foodChartRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FoodChart, error) {
	var chart entity.FoodChart
	err := db.Where("id = ?", id).First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chart, nil
}

func (r *foodChartRepository) FindAll(db *gorm.DB) ([]entity.FoodChart, error) {
	var charts []entity.FoodChart
	err := db.Preload("Patient").Order("created_at").Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}

func (r *foodChartRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.FoodChart, error) {
	var charts []entity.FoodChart
	err := db.Where("patient_id = ?", patientID).Order("created_at").Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}

func (r *foodChartRepository) Update(db *gorm.DB, chart *entity.FoodChart) error {
	return db.Save(chart).Error
}

func (r *foodChartRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.FoodChart{})
	return result.RowsAffected, result.Error
}
