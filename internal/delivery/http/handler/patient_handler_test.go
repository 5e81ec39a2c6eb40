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

// fakePatientUsecase implements usecase.PatientUsecase for handler tests
type fakePatientUsecase struct {
	createFn func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	listFn   func(ctx context.Context) (*dto.PatientListResponse, error)
	updateFn func(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakePatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakePatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakePatientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	return f.listFn(ctx)
}

func (f *fakePatientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakePatientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func validCreatePatientRequest() dto.CreatePatientRequest {
	return dto.CreatePatientRequest{
		Name:             "Jordan Lee",
		Diseases:         []string{"diabetes"},
		Allergies:        []string{"peanuts"},
		RoomNumber:       "101A",
		BedNumber:        "3",
		FloorNumber:      "1",
		Age:              54,
		Gender:           "female",
		ContactInfo:      "+1-555-0100",
		EmergencyContact: "+1-555-0101",
	}
}

func TestCreatePatient(t *testing.T) {
	fake := &fakePatientUsecase{
		createFn: func(_ context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{ID: uuid.New(), Name: req.Name, Age: req.Age}, nil
		},
	}
	h := NewPatientHandler(fake, validator.NewValidator())

	body, _ := json.Marshal(validCreatePatientRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePatientAgeBoundaries(t *testing.T) {
	fake := &fakePatientUsecase{
		createFn: func(_ context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{ID: uuid.New(), Name: req.Name, Age: req.Age}, nil
		},
	}
	h := NewPatientHandler(fake, validator.NewValidator())

	tests := []struct {
		name     string
		age      int
		wantCode int
	}{
		{name: "newborn age zero is valid", age: 0, wantCode: http.StatusCreated},
		{name: "negative age is rejected", age: -1, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := validCreatePatientRequest()
			reqBody.Age = tt.age
			body, _ := json.Marshal(reqBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.CreatePatient(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCreatePatientMissingRequiredFields(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	reqBody := validCreatePatientRequest()
	reqBody.RoomNumber = ""
	reqBody.EmergencyContact = ""
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePatientInvalidBody(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPatientNotFound(t *testing.T) {
	fake := &fakePatientUsecase{
		getFn: func(_ context.Context, _ uuid.UUID) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewPatientHandler(fake, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.GetPatient(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPatientInvalidID(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.GetPatient(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePatient(t *testing.T) {
	var deleted uuid.UUID
	fake := &fakePatientUsecase{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	h := NewPatientHandler(fake, validator.NewValidator())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.DeletePatient(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, deleted)
}
