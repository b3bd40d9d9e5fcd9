package api

import (
	"github.com/garnizeh/treeline/pkg/repository"
	"github.com/gorilla/mux"
)

// SetupRoutes wires every resource family onto a router. The store is
// injected so tests can run against a fresh instance.
func SetupRoutes(version, buildTime string, store repository.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	usersHandler := NewUsersHandler(store)
	regionsHandler := NewRegionsHandler(store)
	locationsHandler := NewLocationsHandler(store)
	inventoryHandler := NewInventoryHandler(store)
	activitiesHandler := NewActivitiesHandler(store)
	tasksHandler := NewTasksHandler(store)
	metricsHandler := NewMetricsHandler(store)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Users endpoints
	api.HandleFunc("/users", usersHandler.List).Methods("GET")
	api.HandleFunc("/users", usersHandler.Create).Methods("POST")
	api.HandleFunc("/users/{id}", usersHandler.Get).Methods("GET")
	api.HandleFunc("/users/{id}", usersHandler.Update).Methods("PUT")
	api.HandleFunc("/users/{id}", usersHandler.Delete).Methods("DELETE")

	// Regions endpoints
	api.HandleFunc("/regions", regionsHandler.List).Methods("GET")
	api.HandleFunc("/regions", regionsHandler.Create).Methods("POST")
	api.HandleFunc("/regions/{id}", regionsHandler.Get).Methods("GET")
	api.HandleFunc("/regions/{id}", regionsHandler.Update).Methods("PUT")
	api.HandleFunc("/regions/{id}", regionsHandler.Delete).Methods("DELETE")

	// Locations endpoints
	api.HandleFunc("/locations", locationsHandler.List).Methods("GET")
	api.HandleFunc("/locations", locationsHandler.Create).Methods("POST")
	api.HandleFunc("/locations/{id}", locationsHandler.Get).Methods("GET")
	api.HandleFunc("/locations/{id}", locationsHandler.Update).Methods("PUT")
	api.HandleFunc("/locations/{id}", locationsHandler.Delete).Methods("DELETE")

	// Inventory endpoints
	api.HandleFunc("/inventory", inventoryHandler.List).Methods("GET")
	api.HandleFunc("/inventory", inventoryHandler.Create).Methods("POST")
	api.HandleFunc("/inventory/{id}", inventoryHandler.Get).Methods("GET")
	api.HandleFunc("/inventory/{id}", inventoryHandler.Update).Methods("PUT")
	api.HandleFunc("/inventory/{id}", inventoryHandler.Delete).Methods("DELETE")

	// Activities endpoints
	api.HandleFunc("/activities", activitiesHandler.List).Methods("GET")
	api.HandleFunc("/activities", activitiesHandler.Create).Methods("POST")
	api.HandleFunc("/activities/{id}", activitiesHandler.Get).Methods("GET")
	api.HandleFunc("/activities/{id}", activitiesHandler.Update).Methods("PUT")
	api.HandleFunc("/activities/{id}", activitiesHandler.Delete).Methods("DELETE")

	// Tasks endpoints, including the dedicated complete transition
	api.HandleFunc("/tasks", tasksHandler.List).Methods("GET")
	api.HandleFunc("/tasks", tasksHandler.Create).Methods("POST")
	api.HandleFunc("/tasks/{id}/complete", tasksHandler.Complete).Methods("PUT")
	api.HandleFunc("/tasks/{id}", tasksHandler.Get).Methods("GET")
	api.HandleFunc("/tasks/{id}", tasksHandler.Update).Methods("PUT")
	api.HandleFunc("/tasks/{id}", tasksHandler.Delete).Methods("DELETE")

	// Metrics endpoints
	api.HandleFunc("/metrics", metricsHandler.List).Methods("GET")
	api.HandleFunc("/metrics", metricsHandler.Create).Methods("POST")
	api.HandleFunc("/metrics/{id}", metricsHandler.Get).Methods("GET")
	api.HandleFunc("/metrics/{id}", metricsHandler.Update).Methods("PUT")
	api.HandleFunc("/metrics/{id}", metricsHandler.Delete).Methods("DELETE")

	return r
}
