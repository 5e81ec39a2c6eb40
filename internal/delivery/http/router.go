package http

import (
	"net/http"

	"hospital-food-service/internal/delivery/http/handler"
	"hospital-food-service/internal/delivery/http/middleware"
	"hospital-food-service/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	foodChartHandler *handler.FoodChartHandler
	pantryHandler    *handler.PantryHandler
	deliveryHandler  *handler.DeliveryHandler
	taskHandler      *handler.TaskHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	foodChartHandler *handler.FoodChartHandler,
	pantryHandler *handler.PantryHandler,
	deliveryHandler *handler.DeliveryHandler,
	taskHandler *handler.TaskHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		foodChartHandler: foodChartHandler,
		pantryHandler:    pantryHandler,
		deliveryHandler:  deliveryHandler,
		taskHandler:      taskHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/logout-all", r.authHandler.LogoutAll).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient management (admin only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireAdmin)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	patients.HandleFunc("/{patientId}/food-charts", r.foodChartHandler.GetFoodChartsByPatient).Methods(http.MethodGet)

	// Food chart management (admin only)
	foodCharts := api.PathPrefix("/food-charts").Subrouter()
	foodCharts.Use(r.authMiddleware.Authenticate)
	foodCharts.Use(middleware.RequireAdmin)
	foodCharts.HandleFunc("", r.foodChartHandler.CreateFoodChart).Methods(http.MethodPost)
	foodCharts.HandleFunc("", r.foodChartHandler.GetAllFoodCharts).Methods(http.MethodGet)
	foodCharts.HandleFunc("/{id}", r.foodChartHandler.GetFoodChart).Methods(http.MethodGet)
	foodCharts.HandleFunc("/{id}", r.foodChartHandler.UpdateFoodChart).Methods(http.MethodPut)
	foodCharts.HandleFunc("/{id}", r.foodChartHandler.DeleteFoodChart).Methods(http.MethodDelete)

	// Pantry staff management (admin only)
	pantry := api.PathPrefix("/pantry").Subrouter()
	pantry.Use(r.authMiddleware.Authenticate)
	pantry.Use(middleware.RequireAdmin)
	pantry.HandleFunc("", r.pantryHandler.CreateStaff).Methods(http.MethodPost)
	pantry.HandleFunc("", r.pantryHandler.GetAllStaff).Methods(http.MethodGet)
	pantry.HandleFunc("/{id}", r.pantryHandler.GetStaff).Methods(http.MethodGet)
	pantry.HandleFunc("/{id}", r.pantryHandler.UpdateStaff).Methods(http.MethodPut)
	pantry.HandleFunc("/{id}", r.pantryHandler.DeleteStaff).Methods(http.MethodDelete)
	pantry.HandleFunc("/{id}/tasks", r.pantryHandler.AssignTask).Methods(http.MethodPost)

	// Deliveries (admin and delivery staff)
	deliveries := api.PathPrefix("/deliveries").Subrouter()
	deliveries.Use(r.authMiddleware.Authenticate)
	deliveries.Use(middleware.RequireAdminOrDelivery)
	deliveries.HandleFunc("", r.deliveryHandler.CreateDelivery).Methods(http.MethodPost)
	deliveries.HandleFunc("", r.deliveryHandler.GetAllDeliveries).Methods(http.MethodGet)
	deliveries.HandleFunc("/{id}", r.deliveryHandler.GetDelivery).Methods(http.MethodGet)
	deliveries.HandleFunc("/{id}", r.deliveryHandler.UpdateDelivery).Methods(http.MethodPut)
	deliveries.HandleFunc("/{id}", r.deliveryHandler.DeleteDelivery).Methods(http.MethodDelete)
	deliveries.HandleFunc("/{id}/delivered", r.deliveryHandler.MarkDelivered).Methods(http.MethodPatch)
	deliveries.HandleFunc("/{id}/status", r.taskHandler.UpdateStatus).Methods(http.MethodPatch)

	// Preparation tasks (admin and pantry staff)
	tasks := api.PathPrefix("/tasks").Subrouter()
	tasks.Use(r.authMiddleware.Authenticate)
	tasks.Use(middleware.RequireAdminOrPantry)
	tasks.HandleFunc("", r.taskHandler.GetTasks).Methods(http.MethodGet)
	tasks.HandleFunc("/{id}/status", r.taskHandler.UpdateStatus).Methods(http.MethodPatch)

	// Audit trail (admin only)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.Use(middleware.RequireAdmin)
	auditLogs.HandleFunc("", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]string{
		"status": "ok",
	})
}
