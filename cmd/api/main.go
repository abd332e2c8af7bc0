package main

import (
	"fmt"
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/config"
	appHTTP "github.com/biotrack/attendance-backend-go/internal/handler/http"
	"github.com/biotrack/attendance-backend-go/internal/pkg/cron"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/biotrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/biotrack/attendance-backend-go/internal/service/attendance"
	deviceService "github.com/biotrack/attendance-backend-go/internal/service/device"
	leaveService "github.com/biotrack/attendance-backend-go/internal/service/leave"
	reportService "github.com/biotrack/attendance-backend-go/internal/service/report"
	shiftService "github.com/biotrack/attendance-backend-go/internal/service/shift"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	shiftDefinitionRepo := postgresql.NewShiftDefinitionRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	factRepo := postgresql.NewFactRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	calendar := shiftService.NewCalendar(shiftAssignmentRepo, shiftDefinitionRepo)
	leaveOracle := leaveService.NewOracle(leaveRequestRepo)
	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, calendar, leaveOracle, factRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceSvc, cfg.Report)
	deviceSvc := deviceService.NewDeviceService(deviceRepo, employeeRepo, punchRepo, txManager)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	shiftHandler := appHTTP.NewShiftHandler(shiftDefinitionRepo)
	deviceHandler := appHTTP.NewDeviceHandler(deviceSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, employeeRepo, factRepo)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		deviceSvc,
		attendanceHandler,
		reportHandler,
		leaveHandler,
		employeeHandler,
		shiftHandler,
		deviceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
