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

var ErrDeliveryNotFound = errors.New("delivery not found")

type DeliveryUsecase interface {
	CreateDelivery(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error)
	GetDelivery(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error)
	GetAllDeliveries(ctx context.Context) (*dto.DeliveryListResponse, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error)
	DeleteDelivery(ctx context.Context, id uuid.UUID) error
	// SetDelivered toggles the delivered flag. It is independent of
	// preparation status: marking a box delivered does not complete it.
	SetDelivered(ctx context.Context, id uuid.UUID, delivered bool) (*dto.DeliveryResponse, error)
}

type deliveryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	deliveryRepo repository.DeliveryRepository
	auditService service.AuditService
}

func NewDeliveryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deliveryRepo repository.DeliveryRepository,
	auditService service.AuditService,
) DeliveryUsecase {
	return &deliveryUsecase{
		db:           db,
		log:          log,
		deliveryRepo: deliveryRepo,
		auditService: auditService,
	}
}

func (u *deliveryUsecase) CreateDelivery(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery := &entity.Delivery{
		PatientID:         req.PatientID,
		MealBox:           req.MealBox,
		DeliveryTime:      req.DeliveryTime,
		DeliveryNotes:     req.DeliveryNotes,
		PreparationStatus: entity.PreparationStatusPending,
	}

	if err := u.deliveryRepo.Create(tx, delivery); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create delivery: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionDeliveryCreate, "delivery", delivery.ID.String(), converter.DeliveryToResponse(delivery)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) GetDelivery(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error) {
	delivery, err := u.deliveryRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) GetAllDeliveries(ctx context.Context) (*dto.DeliveryListResponse, error) {
	deliveries, err := u.deliveryRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find all deliveries: %+v", err)
		return nil, err
	}

	responses := converter.DeliveriesToResponses(deliveries)

	return &dto.DeliveryListResponse{
		Deliveries: responses,
		Total:      len(responses),
	}, nil
}

func (u *deliveryUsecase) UpdateDelivery(ctx context.Context, id uuid.UUID, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}

	oldValue := converter.DeliveryToResponse(delivery)

	delivery.PatientID = req.PatientID
	delivery.MealBox = req.MealBox
	delivery.DeliveryTime = req.DeliveryTime
	if req.Delivered != nil {
		delivery.Delivered = req.Delivered
	}
	delivery.DeliveryNotes = req.DeliveryNotes

	if err := u.deliveryRepo.Update(tx, delivery); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to update delivery: %+v", err)
		return nil, err
	}

	newValue := converter.DeliveryToResponse(delivery)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionDeliveryUpdate, "delivery", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery: %+v", err)
		return err
	}
	if delivery == nil {
		return ErrDeliveryNotFound
	}
	oldValue := converter.DeliveryToResponse(delivery)

	affectedRows, err := u.deliveryRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete delivery: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDeliveryNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionDeliveryDelete, "delivery", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *deliveryUsecase) SetDelivered(ctx context.Context, id uuid.UUID, delivered bool) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}

	oldValue := converter.DeliveryToResponse(delivery)

	delivery.Delivered = &delivered
	if err := u.deliveryRepo.Update(tx, delivery); err != nil {
		u.log.Warnf("Failed to update delivery: %+v", err)
		return nil, err
	}

	newValue := converter.DeliveryToResponse(delivery)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionDeliveryUpdate, "delivery", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}
