package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskUsecase implements usecase.TaskUsecase for handler tests
type fakeTaskUsecase struct {
	getTasksFn     func(ctx context.Context) (*dto.TaskListResponse, error)
	updateStatusFn func(ctx context.Context, taskID uuid.UUID, status entity.PreparationStatus) (*dto.DeliveryResponse, error)
}

func (f *fakeTaskUsecase) GetTasks(ctx context.Context) (*dto.TaskListResponse, error) {
	return f.getTasksFn(ctx)
}

func (f *fakeTaskUsecase) UpdateStatus(ctx context.Context, taskID uuid.UUID, status entity.PreparationStatus) (*dto.DeliveryResponse, error) {
	return f.updateStatusFn(ctx, taskID, status)
}

func TestGetTasks(t *testing.T) {
	fake := &fakeTaskUsecase{
		getTasksFn: func(_ context.Context) (*dto.TaskListResponse, error) {
			return &dto.TaskListResponse{
				Tasks: []*dto.TaskResponse{
					{TaskID: uuid.New(), MealBox: "Morning - Room 101", PreparationStatus: "Pending", AssignedTo: "Asha"},
				},
				Total: 1,
			}, nil
		},
	}
	h := NewTaskHandler(fake, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	rec := httptest.NewRecorder()

	h.GetTasks(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	var gotStatus entity.PreparationStatus
	fake := &fakeTaskUsecase{
		updateStatusFn: func(_ context.Context, taskID uuid.UUID, status entity.PreparationStatus) (*dto.DeliveryResponse, error) {
			gotStatus = status
			return &dto.DeliveryResponse{ID: taskID, PreparationStatus: string(status)}, nil
		},
	}
	h := NewTaskHandler(fake, validator.NewValidator())

	id := uuid.New()
	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "In Progress"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+id.String()+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.PreparationStatusInProgress, gotStatus)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	h := NewTaskHandler(&fakeTaskUsecase{}, validator.NewValidator())

	id := uuid.New()
	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "Done"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+id.String()+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusTaskNotFound(t *testing.T) {
	fake := &fakeTaskUsecase{
		updateStatusFn: func(_ context.Context, _ uuid.UUID, _ entity.PreparationStatus) (*dto.DeliveryResponse, error) {
			return nil, usecase.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(fake, validator.NewValidator())

	id := uuid.New()
	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "Completed"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+id.String()+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
