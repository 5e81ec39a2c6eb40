package repository

import (
	"hospital-food-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, offset, limit int) ([]entity.AuditLog, int64, error)
}
