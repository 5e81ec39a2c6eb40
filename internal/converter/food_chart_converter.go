package converter

import (
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
)

func FoodChartToResponse(chart *entity.FoodChart) *dto.FoodChartResponse {
	if chart == nil {
		return nil
	}

	return &dto.FoodChartResponse{
		ID:           chart.ID,
		PatientID:    chart.PatientID,
		PatientName:  chart.Patient.Name,
		MorningMeal:  chart.MorningMeal,
		EveningMeal:  chart.EveningMeal,
		NightMeal:    chart.NightMeal,
		Instructions: chart.Instructions,
		Ingredients:  chart.Ingredients,
		CreatedAt:    chart.CreatedAt,
		UpdatedAt:    chart.UpdatedAt,
	}
}

func FoodChartsToResponses(charts []entity.FoodChart) []*dto.FoodChartResponse {
	responses := make([]*dto.FoodChartResponse, 0, len(charts))
	for i := range charts {
		responses = append(responses, FoodChartToResponse(&charts[i]))
	}
	return responses
}
