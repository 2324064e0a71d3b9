package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/flamingo-hr/attendance-backend-go/internal/handler/http"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/email"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/oauth"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/sse"
	"github.com/flamingo-hr/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/flamingo-hr/attendance-backend-go/internal/service/auth"
	checkinService "github.com/flamingo-hr/attendance-backend-go/internal/service/checkin"
	employeeService "github.com/flamingo-hr/attendance-backend-go/internal/service/employee"
	holidayService "github.com/flamingo-hr/attendance-backend-go/internal/service/holiday"
	jobOfferService "github.com/flamingo-hr/attendance-backend-go/internal/service/joboffer"
	leaveService "github.com/flamingo-hr/attendance-backend-go/internal/service/leave"
	reportService "github.com/flamingo-hr/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	jobOfferRepo := postgresql.NewJobOfferRepository(db)
	reportStore := postgresql.NewReportStore(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var GoogleService oauth.GoogleService
	if cfg.GoogleEnabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	sseHub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, JWTService, emailService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	checkinSvc := checkinService.NewCheckinService(checkinRepo, employeeRepo, sseHub)
	jobOfferSvc := jobOfferService.NewJobOfferService(jobOfferRepo)
	reportSvc := reportService.NewReportService(reportStore)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	checkinHandler := appHTTP.NewCheckinHandler(checkinSvc)
	jobOfferHandler := appHTTP.NewJobOfferHandler(jobOfferSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(JWTService, sseHub)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.FrontendURL,
		authHandler,
		employeeHandler,
		holidayHandler,
		leaveHandler,
		checkinHandler,
		jobOfferHandler,
		reportHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
