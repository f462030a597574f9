package main

import (
	"fmt"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/config"
	appHTTP "github.com/RostrApp/rostr-backend-go/internal/handler/http"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/cron"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/jwt"
	"github.com/RostrApp/rostr-backend-go/internal/repository/postgresql"
	authService "github.com/RostrApp/rostr-backend-go/internal/service/auth"
	reportService "github.com/RostrApp/rostr-backend-go/internal/service/report"
	scheduleService "github.com/RostrApp/rostr-backend-go/internal/service/schedule"
	shiftService "github.com/RostrApp/rostr-backend-go/internal/service/shift"
	userService "github.com/RostrApp/rostr-backend-go/internal/service/user"
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
	scheduleRepo := postgresql.NewScheduleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, shiftRepo, userRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	reportSvc := reportService.NewReportService(reportRepo, scheduleRepo, shiftRepo)
	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		scheduleHandler,
		shiftHandler,
		reportHandler,
		userHandler,
	)

	scheduler := cron.NewScheduler()
	shiftJobs := cron.NewShiftJobs(shiftSvc, cfg.Cron.ShiftStatusInterval)
	shiftJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
