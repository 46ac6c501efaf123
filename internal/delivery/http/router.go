package http

import (
	"net/http"

	"go-salon-scheduling/internal/delivery/http/handler"
	"go-salon-scheduling/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	professionalHandler *handler.ProfessionalHandler
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	professionalHandler *handler.ProfessionalHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		professionalHandler: professionalHandler,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Professional directory (read-only)
	api.HandleFunc("/professionals", r.professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)

	// Availability queries for slot pickers
	api.HandleFunc("/availability/dates", r.availabilityHandler.GetAvailableDates).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
