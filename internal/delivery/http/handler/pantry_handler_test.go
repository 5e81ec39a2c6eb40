package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePantryUsecase implements usecase.PantryUsecase for handler tests
type fakePantryUsecase struct {
	createFn func(ctx context.Context, req *dto.CreatePantryStaffRequest) (*dto.PantryStaffResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.PantryStaffResponse, error)
	listFn   func(ctx context.Context) (*dto.PantryStaffListResponse, error)
	updateFn func(ctx context.Context, id uuid.UUID, req *dto.UpdatePantryStaffRequest) (*dto.PantryStaffResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (*dto.DeleteStaffResponse, error)
	assignFn func(ctx context.Context, staffID, taskID uuid.UUID) (*dto.PantryStaffResponse, error)
}

func (f *fakePantryUsecase) CreateStaff(ctx context.Context, req *dto.CreatePantryStaffRequest) (*dto.PantryStaffResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakePantryUsecase) GetStaff(ctx context.Context, id uuid.UUID) (*dto.PantryStaffResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakePantryUsecase) GetAllStaff(ctx context.Context) (*dto.PantryStaffListResponse, error) {
	return f.listFn(ctx)
}

func (f *fakePantryUsecase) UpdateStaff(ctx context.Context, id uuid.UUID, req *dto.UpdatePantryStaffRequest) (*dto.PantryStaffResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakePantryUsecase) DeleteStaff(ctx context.Context, id uuid.UUID) (*dto.DeleteStaffResponse, error) {
	return f.deleteFn(ctx, id)
}

func (f *fakePantryUsecase) AssignTask(ctx context.Context, staffID, taskID uuid.UUID) (*dto.PantryStaffResponse, error) {
	return f.assignFn(ctx, staffID, taskID)
}

func TestAssignTask(t *testing.T) {
	var gotStaffID, gotTaskID uuid.UUID
	fake := &fakePantryUsecase{
		assignFn: func(_ context.Context, staffID, taskID uuid.UUID) (*dto.PantryStaffResponse, error) {
			gotStaffID, gotTaskID = staffID, taskID
			return &dto.PantryStaffResponse{ID: staffID}, nil
		},
	}
	h := NewPantryHandler(fake, validator.NewValidator())

	staffID := uuid.New()
	taskID := uuid.New()
	body, _ := json.Marshal(dto.AssignTaskRequest{TaskID: taskID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pantry/"+staffID.String()+"/tasks", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": staffID.String()})
	rec := httptest.NewRecorder()

	h.AssignTask(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, staffID, gotStaffID)
	assert.Equal(t, taskID, gotTaskID)
}

func TestAssignTaskUnknownStaff(t *testing.T) {
	fake := &fakePantryUsecase{
		assignFn: func(_ context.Context, _, _ uuid.UUID) (*dto.PantryStaffResponse, error) {
			return nil, usecase.ErrStaffNotFound
		},
	}
	h := NewPantryHandler(fake, validator.NewValidator())

	staffID := uuid.New()
	body, _ := json.Marshal(dto.AssignTaskRequest{TaskID: uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pantry/"+staffID.String()+"/tasks", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": staffID.String()})
	rec := httptest.NewRecorder()

	h.AssignTask(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignTaskUnknownTask(t *testing.T) {
	fake := &fakePantryUsecase{
		assignFn: func(_ context.Context, _, _ uuid.UUID) (*dto.PantryStaffResponse, error) {
			return nil, usecase.ErrTaskNotFound
		},
	}
	h := NewPantryHandler(fake, validator.NewValidator())

	staffID := uuid.New()
	body, _ := json.Marshal(dto.AssignTaskRequest{TaskID: uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pantry/"+staffID.String()+"/tasks", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": staffID.String()})
	rec := httptest.NewRecorder()

	h.AssignTask(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStaffReportsUnassignedTasks(t *testing.T) {
	fake := &fakePantryUsecase{
		deleteFn: func(_ context.Context, _ uuid.UUID) (*dto.DeleteStaffResponse, error) {
			return &dto.DeleteStaffResponse{UnassignedTasks: 2}, nil
		},
	}
	h := NewPantryHandler(fake, validator.NewValidator())

	staffID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/pantry/"+staffID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": staffID.String()})
	rec := httptest.NewRecorder()

	h.DeleteStaff(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unassigned_tasks":2`)
}
