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

var ErrFoodChartNotFound = errors.New("food chart not found")

type FoodChartUsecase interface {
	CreateFoodChart(ctx context.Context, req *dto.CreateFoodChartRequest) (*dto.FoodChartResponse, error)
	GetFoodChart(ctx context.Context, id uuid.UUID) (*dto.FoodChartResponse, error)
	GetAllFoodCharts(ctx context.Context) (*dto.FoodChartListResponse, error)
	GetFoodChartsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.FoodChartListResponse, error)
	UpdateFoodChart(ctx context.Context, id uuid.UUID, req *dto.UpdateFoodChartRequest) (*dto.FoodChartResponse, error)
	DeleteFoodChart(ctx context.Context, id uuid.UUID) error
}

type foodChartUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	foodChartRepo repository.FoodChartRepository
	auditService  service.AuditService
}

func NewFoodChartUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	foodChartRepo repository.FoodChartRepository,
	auditService service.AuditService,
) FoodChartUsecase {
	return &foodChartUsecase{
		db:            db,
		log:           log,
		foodChartRepo: foodChartRepo,
		auditService:  auditService,
	}
}

func (u *foodChartUsecase) CreateFoodChart(ctx context.Context, req *dto.CreateFoodChartRequest) (*dto.FoodChartResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chart := &entity.FoodChart{
		PatientID:    req.PatientID,
		MorningMeal:  req.MorningMeal,
		EveningMeal:  req.EveningMeal,
		NightMeal:    req.NightMeal,
		Instructions: entity.StringList(req.Instructions),
		Ingredients:  entity.StringList(req.Ingredients),
	}

	if err := u.foodChartRepo.Create(tx, chart); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create food chart: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionFoodChartCreate, "food_chart", chart.ID.String(), converter.FoodChartToResponse(chart)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FoodChartToResponse(chart), nil
}

func (u *foodChartUsecase) GetFoodChart(ctx context.Context, id uuid.UUID) (*dto.FoodChartResponse, error) {
	chart, err := u.foodChartRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find food chart: %+v", err)
		return nil, err
	}
	if chart == nil {
		return nil, ErrFoodChartNotFound
	}

	return converter.FoodChartToResponse(chart), nil
}

func (u *foodChartUsecase) GetAllFoodCharts(ctx context.Context) (*dto.FoodChartListResponse, error) {
	charts, err := u.foodChartRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find all food charts: %+v", err)
		return nil, err
	}

	responses := converter.FoodChartsToResponses(charts)

	return &dto.FoodChartListResponse{
		FoodCharts: responses,
		Total:      len(responses),
	}, nil
}

func (u *foodChartUsecase) GetFoodChartsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.FoodChartListResponse, error) {
	charts, err := u.foodChartRepo.FindByPatientID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find food charts for patient: %+v", err)
		return nil, err
	}

	responses := converter.FoodChartsToResponses(charts)

	return &dto.FoodChartListResponse{
		FoodCharts: responses,
		Total:      len(responses),
	}, nil
}

func (u *foodChartUsecase) UpdateFoodChart(ctx context.Context, id uuid.UUID, req *dto.UpdateFoodChartRequest) (*dto.FoodChartResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chart, err := u.foodChartRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find food chart: %+v", err)
		return nil, err
	}
	if chart == nil {
		return nil, ErrFoodChartNotFound
	}

	oldValue := converter.FoodChartToResponse(chart)

	chart.PatientID = req.PatientID
	chart.MorningMeal = req.MorningMeal
	chart.EveningMeal = req.EveningMeal
	chart.NightMeal = req.NightMeal
	chart.Instructions = entity.StringList(req.Instructions)
	chart.Ingredients = entity.StringList(req.Ingredients)

	if err := u.foodChartRepo.Update(tx, chart); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to update food chart: %+v", err)
		return nil, err
	}

	newValue := converter.FoodChartToResponse(chart)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionFoodChartUpdate, "food_chart", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FoodChartToResponse(chart), nil
}

func (u *foodChartUsecase) DeleteFoodChart(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chart, err := u.foodChartRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find food chart: %+v", err)
		return err
	}
	if chart == nil {
		return ErrFoodChartNotFound
	}
	oldValue := converter.FoodChartToResponse(chart)

	affectedRows, err := u.foodChartRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete food chart: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrFoodChartNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionFoodChartDelete, "food_chart", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
