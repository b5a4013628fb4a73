package http

import (
	"context"
	"net/http"
	"time"

	"github.com/josephsae/healthhub-app/internal/delivery/http/handler"
	"github.com/josephsae/healthhub-app/internal/delivery/http/middleware"
	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/gorilla/mux"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	User              *handler.UserHandler
	Catalog           *handler.CatalogHandler
	Appointment       *handler.AppointmentHandler
	Authorization     *handler.AuthorizationHandler
	ExaminationResult *handler.ExaminationResultHandler
	MedicalRecord     *handler.MedicalRecordHandler
	MedicationRequest *handler.MedicationRequestHandler
}

type Middlewares struct {
	Auth           *middleware.AuthMiddleware
	CORS           *middleware.CORSMiddleware
	Logging        *middleware.LoggingMiddleware
	Recovery       *middleware.RecoveryMiddleware
	LoginRateLimit *middleware.RateLimitMiddleware
}

type Router struct {
	router      *mux.Router
	handlers    Handlers
	middlewares Middlewares
	db          Pinger
}

func NewRouter(handlers Handlers, middlewares Middlewares, db Pinger) *Router {
	return &Router{
		router:      mux.NewRouter(),
		handlers:    handlers,
		middlewares: middlewares,
		db:          db,
	}
}

func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, apperror.ErrRouteNotFound)
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, apperror.ErrMethodNotAllow)
	})

	r.router.HandleFunc("/ping", r.ping).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// User routes (public)
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", r.handlers.User.Register).Methods(http.MethodPost)
	users.Handle("/login", r.middlewares.LoginRateLimit.Handle(http.HandlerFunc(r.handlers.User.Login))).
		Methods(http.MethodPost)

	// Specialist catalog (public)
	api.HandleFunc("/specialists", r.handlers.Catalog.ListSpecialists).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}", r.handlers.Catalog.GetSpecialist).Methods(http.MethodGet)

	// Everything below requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.middlewares.Auth.Authenticate)

	protected.HandleFunc("/medications", r.handlers.Catalog.ListMedications).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.handlers.Appointment.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.handlers.Appointment.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.DeleteAppointment).Methods(http.MethodDelete)

	protected.HandleFunc("/authorizations", r.handlers.Authorization.ListAuthorizations).Methods(http.MethodGet)
	protected.HandleFunc("/authorizations", r.handlers.Authorization.CreateAuthorization).Methods(http.MethodPost)
	protected.HandleFunc("/authorizations/{id}", r.handlers.Authorization.GetAuthorization).Methods(http.MethodGet)

	protected.HandleFunc("/examination-results", r.handlers.ExaminationResult.ListExaminationResults).Methods(http.MethodGet)
	protected.HandleFunc("/examination-results/{id}", r.handlers.ExaminationResult.GetExaminationResult).Methods(http.MethodGet)

	protected.HandleFunc("/medical-records", r.handlers.MedicalRecord.ListMedicalRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}", r.handlers.MedicalRecord.GetMedicalRecord).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}/download", r.handlers.MedicalRecord.DownloadMedicalRecord).Methods(http.MethodGet)

	protected.HandleFunc("/medication-requests", r.handlers.MedicationRequest.ListMedicationRequests).Methods(http.MethodGet)
	protected.HandleFunc("/medication-requests", r.handlers.MedicationRequest.CreateMedicationRequest).Methods(http.MethodPost)
	protected.HandleFunc("/medication-requests/{id}", r.handlers.MedicationRequest.GetMedicationRequest).Methods(http.MethodGet)

	// Wrap the whole router so preflight and unmatched requests get CORS
	// headers and logging too.
	var h http.Handler = r.router
	h = r.middlewares.CORS.Handle(h)
	h = r.middlewares.Recovery.Handle(h)
	h = r.middlewares.Logging.Handle(h)
	return h
}

func (r *Router) ping(w http.ResponseWriter, req *http.Request) {
	response.Message(w, http.StatusOK, "Pong! Service is up and running.")
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	if r.db != nil {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := r.db.PingContext(ctx); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
