package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/officedesk/backoffice-go/internal/config"
	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	appHTTP "github.com/officedesk/backoffice-go/internal/handler/http"
	"github.com/officedesk/backoffice-go/internal/pkg/cron"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
	"github.com/officedesk/backoffice-go/internal/pkg/jwt"
	"github.com/officedesk/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/officedesk/backoffice-go/internal/service/attendance"
	authService "github.com/officedesk/backoffice-go/internal/service/auth"
	employeeService "github.com/officedesk/backoffice-go/internal/service/employee"
	payrollService "github.com/officedesk/backoffice-go/internal/service/payroll"
	stockService "github.com/officedesk/backoffice-go/internal/service/stock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	statuses, err := attendance.ParseStatusSet(cfg.Attendance.Statuses)
	if err != nil {
		fmt.Println("Error parsing attendance statuses:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to apply migrations: ", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	stockRepo := postgresql.NewStockRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	ledgerSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, statuses)
	payrollSvc := payrollService.NewPayrollService(ledgerSvc, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	stockSvc := stockService.NewStockService(db, stockRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	retentionInterval, err := time.ParseDuration(cfg.Attendance.RetentionInterval)
	if err != nil {
		log.Fatal("Invalid ATTENDANCE_RETENTION_INTERVAL: ", err)
	}
	retentionJob := cron.NewRetentionJob(ledgerSvc, cfg.Attendance.RetentionMonths)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-retention", retentionInterval, retentionJob.Run)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerSvc, cfg.Attendance.RetentionMonths)
	salaryHandler := appHTTP.NewSalaryHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	stockHandler := appHTTP.NewStockHandler(stockSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.AllowedOrigins,
		JWTService,
		authHandler,
		attendanceHandler,
		salaryHandler,
		employeeHandler,
		stockHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
