package handler

import (
	"encoding/json"
	"net/http"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/response"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FoodChartHandler struct {
	foodChartUsecase usecase.FoodChartUsecase
	validator        *validator.CustomValidator
}

func NewFoodChartHandler(foodChartUsecase usecase.FoodChartUsecase, validator *validator.CustomValidator) *FoodChartHandler {
	return &FoodChartHandler{
		foodChartUsecase: foodChartUsecase,
		validator:        validator,
	}
}

func (h *FoodChartHandler) CreateFoodChart(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFoodChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	chart, err := h.foodChartUsecase.CreateFoodChart(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create food chart")
		return
	}

	response.Success(w, http.StatusCreated, "Food chart created successfully", chart)
}

func (h *FoodChartHandler) GetFoodChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chartID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid food chart ID", nil)
		return
	}

	chart, err := h.foodChartUsecase.GetFoodChart(r.Context(), chartID)
	if err != nil {
		if err == usecase.ErrFoodChartNotFound {
			response.NotFound(w, "Food chart not found")
			return
		}
		response.InternalServerError(w, "Failed to get food chart")
		return
	}

	response.Success(w, http.StatusOK, "Food chart retrieved successfully", chart)
}

func (h *FoodChartHandler) GetAllFoodCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.foodChartUsecase.GetAllFoodCharts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get food charts")
		return
	}

	response.Success(w, http.StatusOK, "Food charts retrieved successfully", charts)
}

func (h *FoodChartHandler) GetFoodChartsByPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	charts, err := h.foodChartUsecase.GetFoodChartsByPatient(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get food charts")
		return
	}

	response.Success(w, http.StatusOK, "Food charts retrieved successfully", charts)
}

func (h *FoodChartHandler) UpdateFoodChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chartID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid food chart ID", nil)
		return
	}

	var req dto.UpdateFoodChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	chart, err := h.foodChartUsecase.UpdateFoodChart(r.Context(), chartID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFoodChartNotFound:
			response.NotFound(w, "Food chart not found")
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		default:
			response.InternalServerError(w, "Failed to update food chart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Food chart updated successfully", chart)
}

func (h *FoodChartHandler) DeleteFoodChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chartID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid food chart ID", nil)
		return
	}

	if err := h.foodChartUsecase.DeleteFoodChart(r.Context(), chartID); err != nil {
		if err == usecase.ErrFoodChartNotFound {
			response.NotFound(w, "Food chart not found")
			return
		}
		response.InternalServerError(w, "Failed to delete food chart")
		return
	}

	response.Success(w, http.StatusOK, "Food chart deleted successfully", nil)
}
