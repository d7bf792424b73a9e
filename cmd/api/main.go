package main

import (
	"fmt"
	"net/http"

	"github.com/staffly-hr/staffly-backend-go/internal/config"
	appHTTP "github.com/staffly-hr/staffly-backend-go/internal/handler/http"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/cron"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/database"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/jwt"
	"github.com/staffly-hr/staffly-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffly-hr/staffly-backend-go/internal/service/attendance"
	authService "github.com/staffly-hr/staffly-backend-go/internal/service/auth"
	employeeService "github.com/staffly-hr/staffly-backend-go/internal/service/employee"
	leaveService "github.com/staffly-hr/staffly-backend-go/internal/service/leave"
	payrollService "github.com/staffly-hr/staffly-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryStructureRepo := postgresql.NewSalaryStructureRepository(db)
	paySlipRepo := postgresql.NewPaySlipRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, salaryStructureRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, paySlipRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		salaryStructureRepo,
		paySlipRepo,
		employeeRepo,
		attendanceRepo,
		leaveRequestRepo,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	if cfg.App.CronEnabled {
		scheduler := cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
