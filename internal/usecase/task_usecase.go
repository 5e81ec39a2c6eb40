package usecase

import (
	"context"

	"hospital-food-service/internal/converter"
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/internal/domain/repository"
	"hospital-food-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TaskUsecase is the pantry board view over deliveries: preparation staff
// and their assigned meal boxes. UpdateStatus is the only write path for
// preparation status; every handler that changes status goes through it.
type TaskUsecase interface {
	GetTasks(ctx context.Context) (*dto.TaskListResponse, error)
	UpdateStatus(ctx context.Context, taskID uuid.UUID, status entity.PreparationStatus) (*dto.DeliveryResponse, error)
}

type taskUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.PantryStaffRepository
	deliveryRepo repository.DeliveryRepository
	auditService service.AuditService
}

func NewTaskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.PantryStaffRepository,
	deliveryRepo repository.DeliveryRepository,
	auditService service.AuditService,
) TaskUsecase {
	return &taskUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		deliveryRepo: deliveryRepo,
		auditService: auditService,
	}
}

func (u *taskUsecase) GetTasks(ctx context.Context) (*dto.TaskListResponse, error) {
	staff, err := u.staffRepo.FindByRoleWithTasks(u.db, entity.StaffRolePreparation)
	if err != nil {
		u.log.Warnf("Failed to find preparation staff: %+v", err)
		return nil, err
	}

	tasks := converter.StaffTasksToResponses(staff)

	return &dto.TaskListResponse{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}

func (u *taskUsecase) UpdateStatus(ctx context.Context, taskID uuid.UUID, status entity.PreparationStatus) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.deliveryRepo.FindByID(tx, taskID)
	if err != nil {
		u.log.Warnf("Failed to find delivery task: %+v", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	oldStatus := task.PreparationStatus

	// Any status may move to any other; Completed is not terminal
	task.PreparationStatus = status
	if err := u.deliveryRepo.Update(tx, task); err != nil {
		u.log.Warnf("Failed to update task status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTaskStatus, "delivery", taskID.String(), string(oldStatus), string(status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(task), nil
}
