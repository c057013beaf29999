package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Billing      BillingHandler
	Organization OrganizationHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Attendance   AttendanceHandler
	Work         WorkHandler
}

func NewRouter(jwtService jwt.Service, frontendURL, storagePath string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(storagePath))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Organization.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/logout", h.Auth.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Post("/admin-login", h.Auth.AdminLogin)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		r.Route("/billing", func(r chi.Router) {
			r.Post("/checkout-session", h.Billing.CreateCheckoutSession)
			r.Get("/session", h.Billing.GetSession)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", h.Organization.List)
				r.Get("/{organizationID}/departments", h.Organization.ListDepartments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{organizationID}", h.Organization.Delete)
					r.Get("/{organizationID}/employees", h.Employee.ListByOrganization)
					r.Post("/{organizationID}/employees", h.Employee.Add)
					r.Delete("/{organizationID}/employees/{employeeID}", h.Employee.Delete)
				})
			})

			r.With(middleware.RequireManager).
				Get("/departments/my/employees", h.Employee.ListDepartmentColleagues)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)
				r.Post("/me/photo", h.Employee.UpdateProfilePhoto)

				r.With(middleware.AdminOnly).
					Post("/{employeeID}/promote", h.Employee.Promote)
				r.With(middleware.RequireManager).
					Post("/{employeeID}/works", h.Work.Assign)
			})

			r.Route("/works", func(r chi.Router) {
				r.Get("/my", h.Work.ListMine)
				r.Delete("/my/{workID}", h.Work.Remove)

				r.Route("/submissions", func(r chi.Router) {
					r.Post("/", h.Work.Submit)
					r.Get("/my", h.Work.ListMySubmissions)
					r.Get("/{submittedWorkID}/reviews", h.Work.ListReviews)

					r.With(middleware.RequireManager).
						Get("/assigned", h.Work.ListAssignedSubmissions)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", h.Work.AddReview)
				r.Put("/{reviewID}", h.Work.EditReview)
				r.Delete("/{reviewID}", h.Work.DeleteReview)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/apply", h.Leave.Apply)
				r.Get("/my", h.Leave.GetMyLeaves)

				r.With(middleware.RequireManager).
					Get("/departments/{organizationID}", h.Leave.ListDepartmentLeaves)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListOrganizationLeaves)
					r.Put("/{requestID}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Get("/my", h.Attendance.MyRecords)
				r.Get("/status/today", h.Attendance.StatusToday)

				r.With(middleware.RequireManager).
					Get("/{employeeID}/records", h.Attendance.EmployeeRecords)
				r.With(middleware.RequireManager).
					Get("/departments/{organizationID}/status/today", h.Attendance.DepartmentStatusToday)
				r.With(middleware.AdminOnly).
					Post("/mark-absentees", h.Attendance.MarkAbsentees)
			})
		})
	})
	return r
}
