package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deeraj1899/EMS/internal/config"
	appHTTP "github.com/deeraj1899/EMS/internal/handler/http"
	"github.com/deeraj1899/EMS/internal/pkg/cron"
	"github.com/deeraj1899/EMS/internal/pkg/database"
	"github.com/deeraj1899/EMS/internal/pkg/email"
	"github.com/deeraj1899/EMS/internal/pkg/jwt"
	"github.com/deeraj1899/EMS/internal/pkg/payment"
	"github.com/deeraj1899/EMS/internal/pkg/storage"
	"github.com/deeraj1899/EMS/internal/repository/postgresql"
	attendanceService "github.com/deeraj1899/EMS/internal/service/attendance"
	authService "github.com/deeraj1899/EMS/internal/service/auth"
	employeeService "github.com/deeraj1899/EMS/internal/service/employee"
	leaveService "github.com/deeraj1899/EMS/internal/service/leave"
	organizationService "github.com/deeraj1899/EMS/internal/service/organization"
	workService "github.com/deeraj1899/EMS/internal/service/work"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	orgRepo := postgresql.NewOrganizationRepository(db)
	deptRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ledgerRepo := postgresql.NewLeaveLedgerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workRepo := postgresql.NewWorkRepository(db)
	submissionRepo := postgresql.NewSubmissionRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService := email.NewEmailService(cfg.SMTP)
	paymentService := payment.NewStripeService(cfg.Stripe)

	orgService := organizationService.NewService(
		orgRepo,
		deptRepo,
		employeeRepo,
		ledgerRepo,
		attendanceRepo,
		workRepo,
		submissionRepo,
		reviewRepo,
		emailService,
		db,
	)
	empService := employeeService.NewService(
		employeeRepo,
		deptRepo,
		orgRepo,
		ledgerRepo,
		attendanceRepo,
		workRepo,
		submissionRepo,
		emailService,
		db,
	)
	authSvc := authService.NewService(employeeRepo, orgRepo, JWTService, emailService)
	leaveSvc := leaveService.NewService(ledgerRepo, employeeRepo, db, cfg.Leave)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, cfg.Attendance)
	workSvc := workService.NewService(workRepo, submissionRepo, reviewRepo, employeeRepo, db)

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, cfg.Storage.BasePath, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, JWTService),
		Billing:      appHTTP.NewBillingHandler(paymentService),
		Organization: appHTTP.NewOrganizationHandler(orgService, fileStorage),
		Employee:     appHTTP.NewEmployeeHandler(empService, fileStorage),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Work:         appHTTP.NewWorkHandler(workSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, cfg.Attendance).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
