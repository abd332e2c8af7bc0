package http

import (
	"log/slog"
	"os"

	"github.com/biotrack/attendance-backend-go/internal/config"
	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/biotrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	deviceService device.DeviceService,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	deviceHandler DeviceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "biotrack-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-Key"},
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

		// Device endpoints authenticate with per-device API keys, not JWTs
		r.Route("/devices/{deviceID}", func(r chi.Router) {
			r.Use(middleware.DeviceAuth(deviceService))
			r.Post("/punches", deviceHandler.IngestPunches)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/daily", attendanceHandler.GetDaily)
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/day", attendanceHandler.GetEmployeeDay)
					r.Get("/history", attendanceHandler.GetHistory)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/department", reportHandler.GetDepartmentReport)
				r.Get("/monthly", reportHandler.GetMonthlyReport)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.List)
				r.Post("/{id}/approve", leaveHandler.Approve)
				r.Post("/{id}/reject", leaveHandler.Reject)
			})

			r.Get("/employees", employeeHandler.List)
			r.Get("/shifts", shiftHandler.List)
		})
	})
	return r
}
