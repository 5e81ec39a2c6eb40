package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDeliveryUsecase implements usecase.DeliveryUsecase for handler tests
type fakeDeliveryUsecase struct {
	createFn       func(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error)
	listFn         func(ctx context.Context) (*dto.DeliveryListResponse, error)
	updateFn       func(ctx context.Context, id uuid.UUID, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	setDeliveredFn func(ctx context.Context, id uuid.UUID, delivered bool) (*dto.DeliveryResponse, error)
}

func (f *fakeDeliveryUsecase) CreateDelivery(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeDeliveryUsecase) GetDelivery(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeDeliveryUsecase) GetAllDeliveries(ctx context.Context) (*dto.DeliveryListResponse, error) {
	return f.listFn(ctx)
}

func (f *fakeDeliveryUsecase) UpdateDelivery(ctx context.Context, id uuid.UUID, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeDeliveryUsecase) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeDeliveryUsecase) SetDelivered(ctx context.Context, id uuid.UUID, delivered bool) (*dto.DeliveryResponse, error) {
	return f.setDeliveredFn(ctx, id, delivered)
}

func TestMarkDelivered(t *testing.T) {
	var gotDelivered bool
	fake := &fakeDeliveryUsecase{
		setDeliveredFn: func(_ context.Context, id uuid.UUID, delivered bool) (*dto.DeliveryResponse, error) {
			gotDelivered = delivered
			return &dto.DeliveryResponse{ID: id, Delivered: &delivered}, nil
		},
	}
	h := NewDeliveryHandler(fake, validator.NewValidator())

	id := uuid.New()
	delivered := true
	body, _ := json.Marshal(dto.UpdateDeliveredRequest{Delivered: &delivered})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/deliveries/"+id.String()+"/delivered", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.MarkDelivered(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotDelivered)
}

func TestMarkDeliveredMissingFlag(t *testing.T) {
	h := NewDeliveryHandler(&fakeDeliveryUsecase{}, validator.NewValidator())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/deliveries/"+id.String()+"/delivered", bytes.NewReader([]byte("{}")))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.MarkDelivered(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkDeliveredNotFound(t *testing.T) {
	fake := &fakeDeliveryUsecase{
		setDeliveredFn: func(_ context.Context, _ uuid.UUID, _ bool) (*dto.DeliveryResponse, error) {
			return nil, usecase.ErrDeliveryNotFound
		},
	}
	h := NewDeliveryHandler(fake, validator.NewValidator())

	id := uuid.New()
	delivered := true
	body, _ := json.Marshal(dto.UpdateDeliveredRequest{Delivered: &delivered})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/deliveries/"+id.String()+"/delivered", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.MarkDelivered(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDeliveryUnknownPatient(t *testing.T) {
	fake := &fakeDeliveryUsecase{
		createFn: func(_ context.Context, _ *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewDeliveryHandler(fake, validator.NewValidator())

	body, _ := json.Marshal(dto.CreateDeliveryRequest{
		PatientID:    uuid.New(),
		MealBox:      "Morning - Room 101",
		DeliveryTime: time.Now().Add(time.Hour),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deliveries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateDelivery(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
