package usecase

import (
	"context"
	"errors"

	"hospital-food-service/internal/converter"
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/internal/domain/repository"
	"hospital-food-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("pantry staff not found")
	ErrTaskNotFound  = errors.New("task not found")
)

type PantryUsecase interface {
	CreateStaff(ctx context.Context, req *dto.CreatePantryStaffRequest) (*dto.PantryStaffResponse, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*dto.PantryStaffResponse, error)
	GetAllStaff(ctx context.Context) (*dto.PantryStaffListResponse, error)
	UpdateStaff(ctx context.Context, id uuid.UUID, req *dto.UpdatePantryStaffRequest) (*dto.PantryStaffResponse, error)
	// DeleteStaff removes the staff member and unassigns every delivery that
	// referenced them, in one transaction. Returns the unassigned count.
	DeleteStaff(ctx context.Context, id uuid.UUID) (*dto.DeleteStaffResponse, error)
	// AssignTask attaches a delivery to a staff member. A task already held
	// by someone else moves to the new assignee without error.
	AssignTask(ctx context.Context, staffID, taskID uuid.UUID) (*dto.PantryStaffResponse, error)
}

type pantryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.PantryStaffRepository
	deliveryRepo repository.DeliveryRepository
	auditService service.AuditService
}

func NewPantryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.PantryStaffRepository,
	deliveryRepo repository.DeliveryRepository,
	auditService service.AuditService,
) PantryUsecase {
	return &pantryUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		deliveryRepo: deliveryRepo,
		auditService: auditService,
	}
}

func (u *pantryUsecase) CreateStaff(ctx context.Context, req *dto.CreatePantryStaffRequest) (*dto.PantryStaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff := &entity.PantryStaff{
		StaffName:    req.StaffName,
		ContactInfo:  req.ContactInfo,
		Location:     req.Location,
		Role:         entity.StaffRole(req.Role),
		Availability: req.Availability,
		ShiftTiming:  req.ShiftTiming,
	}

	if err := u.staffRepo.Create(tx, staff); err != nil {
		u.log.Warnf("Failed to create pantry staff: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionStaffCreate, "pantry_staff", staff.ID.String(), converter.PantryStaffToResponse(staff)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PantryStaffToResponse(staff), nil
}

func (u *pantryUsecase) GetStaff(ctx context.Context, id uuid.UUID) (*dto.PantryStaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find pantry staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.PantryStaffToResponse(staff), nil
}

func (u *pantryUsecase) GetAllStaff(ctx context.Context) (*dto.PantryStaffListResponse, error) {
	staff, err := u.staffRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find all pantry staff: %+v", err)
		return nil, err
	}

	responses := converter.PantryStaffToResponses(staff)

	return &dto.PantryStaffListResponse{
		Staff: responses,
		Total: len(responses),
	}, nil
}

func (u *pantryUsecase) UpdateStaff(ctx context.Context, id uuid.UUID, req *dto.UpdatePantryStaffRequest) (*dto.PantryStaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pantry staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	oldValue := converter.PantryStaffToResponse(staff)

	staff.StaffName = req.StaffName
	staff.ContactInfo = req.ContactInfo
	staff.Location = req.Location
	staff.Role = entity.StaffRole(req.Role)
	if req.Availability != nil {
		staff.Availability = req.Availability
	}
	staff.ShiftTiming = req.ShiftTiming

	if err := u.staffRepo.Update(tx, staff); err != nil {
		u.log.Warnf("Failed to update pantry staff: %+v", err)
		return nil, err
	}

	newValue := converter.PantryStaffToResponse(staff)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionStaffUpdate, "pantry_staff", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PantryStaffToResponse(staff), nil
}

func (u *pantryUsecase) DeleteStaff(ctx context.Context, id uuid.UUID) (*dto.DeleteStaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pantry staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	oldValue := converter.PantryStaffToResponse(staff)

	// Unassign first so the count is known; the FK's SET NULL would cover
	// the rows anyway, but both writes must land in the same transaction
	unassigned, err := u.deliveryRepo.UnassignByStaffID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to unassign deliveries: %+v", err)
		return nil, err
	}

	affectedRows, err := u.staffRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete pantry staff: %+v", err)
		return nil, err
	}
	if affectedRows == 0 {
		return nil, ErrStaffNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionStaffDelete, "pantry_staff", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.DeleteStaffResponse{UnassignedTasks: unassigned}, nil
}

func (u *pantryUsecase) AssignTask(ctx context.Context, staffID, taskID uuid.UUID) (*dto.PantryStaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, staffID)
	if err != nil {
		u.log.Warnf("Failed to find pantry staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	task, err := u.deliveryRepo.FindByID(tx, taskID)
	if err != nil {
		u.log.Warnf("Failed to find delivery task: %+v", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.AssignedStaffID = &staffID
	if err := u.deliveryRepo.Update(tx, task); err != nil {
		u.log.Warnf("Failed to assign task: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionTaskAssign, "delivery", taskID.String(), nil, staffID.String()); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload so the response carries the refreshed task list
	staff, err = u.staffRepo.FindByID(u.db, staffID)
	if err != nil {
		u.log.Warnf("Failed to reload pantry staff: %+v", err)
		return nil, err
	}

	return converter.PantryStaffToResponse(staff), nil
}
