package usecase

import (
	"context"

	"hospital-food-service/internal/converter"
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/repository"
	"hospital-food-service/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]*dto.AuditLogResponse, *response.Meta, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) GetAuditLogs(ctx context.Context, page, limit int) ([]*dto.AuditLogResponse, *response.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	logs, total, err := u.auditRepo.FindAll(u.db, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, nil, err
	}

	return converter.AuditLogsToResponses(logs), response.NewMeta(page, limit, total), nil
}
