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

type DeliveryHandler struct {
	deliveryUsecase usecase.DeliveryUsecase
	validator       *validator.CustomValidator
}

func NewDeliveryHandler(deliveryUsecase usecase.DeliveryUsecase, validator *validator.CustomValidator) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUsecase: deliveryUsecase,
		validator:       validator,
	}
}

func (h *DeliveryHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.deliveryUsecase.CreateDelivery(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create delivery")
		return
	}

	response.Success(w, http.StatusCreated, "Delivery created successfully", delivery)
}

func (h *DeliveryHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deliveryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid delivery ID", nil)
		return
	}

	delivery, err := h.deliveryUsecase.GetDelivery(r.Context(), deliveryID)
	if err != nil {
		if err == usecase.ErrDeliveryNotFound {
			response.NotFound(w, "Delivery not found")
			return
		}
		response.InternalServerError(w, "Failed to get delivery")
		return
	}

	response.Success(w, http.StatusOK, "Delivery retrieved successfully", delivery)
}

func (h *DeliveryHandler) GetAllDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveryUsecase.GetAllDeliveries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get deliveries")
		return
	}

	response.Success(w, http.StatusOK, "Deliveries retrieved successfully", deliveries)
}

func (h *DeliveryHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deliveryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid delivery ID", nil)
		return
	}

	var req dto.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.deliveryUsecase.UpdateDelivery(r.Context(), deliveryID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDeliveryNotFound:
			response.NotFound(w, "Delivery not found")
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		default:
			response.InternalServerError(w, "Failed to update delivery")
		}
		return
	}

	response.Success(w, http.StatusOK, "Delivery updated successfully", delivery)
}

func (h *DeliveryHandler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deliveryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid delivery ID", nil)
		return
	}

	if err := h.deliveryUsecase.DeleteDelivery(r.Context(), deliveryID); err != nil {
		if err == usecase.ErrDeliveryNotFound {
			response.NotFound(w, "Delivery not found")
			return
		}
		response.InternalServerError(w, "Failed to delete delivery")
		return
	}

	response.Success(w, http.StatusOK, "Delivery deleted successfully", nil)
}

func (h *DeliveryHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deliveryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid delivery ID", nil)
		return
	}

	var req dto.UpdateDeliveredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.deliveryUsecase.SetDelivered(r.Context(), deliveryID, *req.Delivered)
	if err != nil {
		if err == usecase.ErrDeliveryNotFound {
			response.NotFound(w, "Delivery not found")
			return
		}
		response.InternalServerError(w, "Failed to update delivery")
		return
	}

	response.Success(w, http.StatusOK, "Delivery updated successfully", delivery)
}
