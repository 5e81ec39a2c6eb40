package repository

import (
	"errors"

	"hospital-food-service/internal/domain/entity"
	domainRepo "hospital-food-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pantryStaffRepository struct{}

func NewPantryStaffRepository() domainRepo.PantryStaffRepository {
	return &pantryStaffRepository{}
}

func (r *pantryStaffRepository) Create(db *gorm.DB, staff *entity.PantryStaff) error {
	return db.Create(staff).Error
}

func (r *pantryStaffRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PantryStaff, error) {
	var staff entity.PantryStaff
	err := db.Preload("AssignedTasks").Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *pantryStaffRepository) FindAll(db *gorm.DB) ([]entity.PantryStaff, error) {
	var staff []entity.PantryStaff
	err := db.Preload("AssignedTasks").Order("created_at").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *pantryStaffRepository) FindByRoleWithTasks(db *gorm.DB, role entity.StaffRole) ([]entity.PantryStaff, error) {
	var staff []entity.PantryStaff
	err := db.Preload("AssignedTasks").Where("role = ?", role).Order("created_at").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *pantryStaffRepository) Update(db *gorm.DB, staff *entity.PantryStaff) error {
	return db.Save(staff).Error
}

func (r *pantryStaffRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.PantryStaff{})
	return result.RowsAffected, result.Error
}
