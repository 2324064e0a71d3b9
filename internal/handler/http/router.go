package http

import (
	"log/slog"
	"os"

	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	frontendURL string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	leaveHandler LeaveHandler,
	checkinHandler CheckinHandler,
	jobOfferHandler JobOfferHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/otp/generate", authHandler.GenerateOTP)
			r.Post("/otp/validate", authHandler.ValidateOTP)
			r.Post("/reset-password", authHandler.ResetPassword)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// SSE stream authenticates with its own short-lived token
		r.Get("/events/stream", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/events/token", eventsHandler.Token)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/birthdays/today", employeeHandler.TodayBirthdays)
				r.Get("/{employeeID}", employeeHandler.GetByID)
				r.Get("/{employeeID}/leave-applications", leaveHandler.ListForEmployee)
				r.Get("/{employeeID}/checkins", checkinHandler.Recent)
				r.Get("/{employeeID}/attendance-log", checkinHandler.AttendanceLog)
			})

			r.Get("/holidays/employee-wise", holidayHandler.EmployeeWise)

			r.Route("/leave-applications", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.ListForApprover)
				r.Put("/{leaveID}/status", leaveHandler.UpdateStatus)
			})

			r.Route("/checkins", func(r chi.Router) {
				r.Post("/", checkinHandler.Punch)
				r.Get("/regularise", checkinHandler.RegulariseQueue)
				r.Put("/{checkinID}/regularise", checkinHandler.RequestRegularise)
				r.Put("/{checkinID}/regularise/decision", checkinHandler.DecideRegularise)
			})

			r.Route("/job-offers", func(r chi.Router) {
				r.Get("/", jobOfferHandler.ForApplicant)
				r.Get("/salary-structures/{structureName}", jobOfferHandler.StructureComponents)
			})

			r.Get("/reports/monthly-attendance", reportHandler.MonthlyAttendance)
		})
	})
	return r
}
