package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	doctorHandler        *handler.DoctorHandler
	filterHandler        *handler.FilterHandler
	queryStateMiddleware *middleware.QueryStateMiddleware
	loggerMiddleware     *middleware.LoggerMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	filterHandler *handler.FilterHandler,
	queryStateMiddleware *middleware.QueryStateMiddleware,
	loggerMiddleware *middleware.LoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		doctorHandler:        doctorHandler,
		filterHandler:        filterHandler,
		queryStateMiddleware: queryStateMiddleware,
		loggerMiddleware:     loggerMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory views, filter read from the URL
	views := api.NewRoute().Subrouter()
	views.Use(r.queryStateMiddleware.Provide)
	views.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	views.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet)
	views.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Filter mutations, each replaces the URL entry given by the request query
	filters := api.PathPrefix("/filters").Subrouter()
	filters.HandleFunc("/search", r.filterHandler.UpdateSearch).Methods(http.MethodPost)
	filters.HandleFunc("/consultation", r.filterHandler.UpdateConsultation).Methods(http.MethodPost)
	filters.HandleFunc("/specialty", r.filterHandler.UpdateSpecialty).Methods(http.MethodPost)
	filters.HandleFunc("/sort", r.filterHandler.UpdateSort).Methods(http.MethodPost)

	r.router.Use(r.loggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
