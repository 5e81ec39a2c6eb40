package repository

import (
	"errors"

	"hospital-food-service/internal/domain/entity"
	domainRepo "hospital-food-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deliveryRepository struct{}

func NewDeliveryRepository() domainRepo.DeliveryRepository {
	return &deliveryRepository{}
}

func (r *deliveryRepository) Create(db *gorm.DB, delivery *entity.Delivery) error {
	return db.Create(delivery).Error
}

func (r *deliveryRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Delivery, error) {
	var delivery entity.Delivery
	err := db.Preload("AssignedStaff").Where("id = ?", id).First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) FindAll(db *gorm.DB) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	err := db.Preload("Patient").Preload("AssignedStaff").Order("delivery_time").Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *deliveryRepository) Update(db *gorm.DB, delivery *entity.Delivery) error {
	return db.Save(delivery).Error
}

func (r *deliveryRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Delivery{})
	return result.RowsAffected, result.Error
}

func (r *deliveryRepository) UnassignByStaffID(db *gorm.DB, staffID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Delivery{}).
		Where("assigned_staff_id = ?", staffID).
		Update("assigned_staff_id", nil)
	return result.RowsAffected, result.Error
}
