package main

import (
	"fmt"
	"net/http"

	"github.com/nexus-ceredi/nexus-backend-go/internal/config"
	appHTTP "github.com/nexus-ceredi/nexus-backend-go/internal/handler/http"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/cron"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/jwt"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/oauth"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/sse"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexus-ceredi/nexus-backend-go/internal/service/attendance"
	auditService "github.com/nexus-ceredi/nexus-backend-go/internal/service/audit"
	authService "github.com/nexus-ceredi/nexus-backend-go/internal/service/auth"
	catalogService "github.com/nexus-ceredi/nexus-backend-go/internal/service/catalog"
	reportService "github.com/nexus-ceredi/nexus-backend-go/internal/service/report"
	userService "github.com/nexus-ceredi/nexus-backend-go/internal/service/user"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	accrualRepo := postgresql.NewAccrualRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		userRepo,
		accrualRepo,
		reportRepo,
		hub,
		cfg.Attendance.GracePeriod,
	)
	auditSvc := auditService.NewAuditService(attendanceRepo, userRepo, reportRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	userSvc := userService.NewUserService(db, userRepo, catalogRepo, accrualRepo)
	catalogSvc := catalogService.NewCatalogService(catalogRepo, userRepo)
	reportSvc := reportService.NewReportService(reportRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc, accrualRepo)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, auditSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)
	sseHandler := appHTTP.NewSSEHandler(hub, jwtService)

	if cfg.Attendance.AuditCronEnabled {
		scheduler := cron.NewScheduler()
		cron.NewAuditJobs(auditSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		reportHandler,
		catalogHandler,
		sseHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
