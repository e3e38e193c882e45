package http

import (
	"net/http"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/handlers"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/metrics"
	httpmw "github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	EmployerHandler    *handlers.EmployerHandler
	AdminHandler       *handlers.AdminHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *zap.Logger
	UploadDir          string
	AllowedOrigins     []string
	RequestTimeout     time.Duration
}

// Multipart resume uploads cap at 5MB plus form overhead; everything else is
// far below this.
const maxBodyBytes = 10 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.NewHandler(deps.Metrics)).Methods(http.MethodGet)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir))),
	).Methods(http.MethodGet)

	authn := deps.AuthMiddleware.Authenticate
	optional := deps.AuthMiddleware.OptionalAuthenticate
	employer := httpmw.RequireRole(user.RoleEmployer, user.RoleAdmin)
	employerOnly := httpmw.RequireRole(user.RoleEmployer)
	applicant := httpmw.RequireRole(user.RoleApplicant)
	admin := httpmw.RequireRole(user.RoleAdmin)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", deps.AuthHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", deps.AuthHandler.Login).Methods(http.MethodPost)
	auth.Handle("/logout", authn(http.HandlerFunc(deps.AuthHandler.Logout))).Methods(http.MethodPost)
	auth.Handle("/profile", authn(http.HandlerFunc(deps.AuthHandler.Profile))).Methods(http.MethodGet)

	jobs := r.PathPrefix("/api/jobs").Subrouter()
	jobs.Handle("", authn(employer(http.HandlerFunc(deps.JobHandler.Create)))).Methods(http.MethodPost)
	jobs.HandleFunc("", deps.JobHandler.List).Methods(http.MethodGet)
	jobs.Handle("/browse", optional(http.HandlerFunc(deps.JobHandler.Browse))).Methods(http.MethodGet)
	jobs.HandleFunc("/{id}", deps.JobHandler.Get).Methods(http.MethodGet)
	jobs.Handle("/{id}", authn(http.HandlerFunc(deps.JobHandler.Update))).Methods(http.MethodPut)
	jobs.Handle("/{id}", authn(http.HandlerFunc(deps.JobHandler.Delete))).Methods(http.MethodDelete)

	apps := r.PathPrefix("/api/applications").Subrouter()
	apps.Handle("", authn(applicant(http.HandlerFunc(deps.ApplicationHandler.Apply)))).Methods(http.MethodPost)
	apps.Handle("", authn(applicant(http.HandlerFunc(deps.ApplicationHandler.ListMine)))).Methods(http.MethodGet)
	apps.Handle("/job/{jobId}", authn(employer(http.HandlerFunc(deps.ApplicationHandler.ListForJob)))).Methods(http.MethodGet)
	apps.Handle("/{id}", authn(admin(http.HandlerFunc(deps.ApplicationHandler.UpdateStatus)))).Methods(http.MethodPut)

	emp := r.PathPrefix("/api/employer").Subrouter()
	emp.Use(authn, employerOnly)
	emp.HandleFunc("/jobs", deps.EmployerHandler.ListJobs).Methods(http.MethodGet)
	emp.HandleFunc("/jobs/{id}", deps.EmployerHandler.UpdateJob).Methods(http.MethodPut)
	emp.HandleFunc("/jobs/{id}/status", deps.EmployerHandler.UpdateJobStatus).Methods(http.MethodPut)
	emp.HandleFunc("/jobs/{id}", deps.EmployerHandler.DeleteJob).Methods(http.MethodDelete)
	emp.HandleFunc("/applications", deps.EmployerHandler.ListApplications).Methods(http.MethodGet)
	emp.HandleFunc("/applications/{id}", deps.EmployerHandler.UpdateApplicationStatus).Methods(http.MethodPut)

	adm := r.PathPrefix("/api/admin").Subrouter()
	adm.Use(authn, admin)
	adm.HandleFunc("/users", deps.AdminHandler.ListUsers).Methods(http.MethodGet)
	adm.HandleFunc("/users/{id}", deps.AdminHandler.UpdateUser).Methods(http.MethodPut)
	adm.HandleFunc("/users/{id}", deps.AdminHandler.DeleteUser).Methods(http.MethodDelete)
	adm.HandleFunc("/jobs", deps.AdminHandler.ListJobs).Methods(http.MethodGet)
	adm.HandleFunc("/jobs/{id}", deps.AdminHandler.DeleteJob).Methods(http.MethodDelete)
	adm.HandleFunc("/applications", deps.AdminHandler.ListApplications).Methods(http.MethodGet)

	cors := gorilla.CORS(
		gorilla.AllowedOrigins(deps.AllowedOrigins),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		gorilla.AllowCredentials(),
	)

	return httpmw.Chain(cors(r),
		httpmw.RequestID,
		httpmw.Logging(deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(deps.Metrics),
		httpmw.Timeout(deps.RequestTimeout),
	)
}
