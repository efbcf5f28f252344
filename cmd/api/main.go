package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hazari-app/hazari-backend-go/internal/config"
	appHTTP "github.com/hazari-app/hazari-backend-go/internal/handler/http"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/jwt"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/storage"
	"github.com/hazari-app/hazari-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hazari-app/hazari-backend-go/internal/service/attendance"
	authService "github.com/hazari-app/hazari-backend-go/internal/service/auth"
	contractorService "github.com/hazari-app/hazari-backend-go/internal/service/contractor"
	"github.com/hazari-app/hazari-backend-go/internal/service/file"
	labourService "github.com/hazari-app/hazari-backend-go/internal/service/labour"
	leaveService "github.com/hazari-app/hazari-backend-go/internal/service/leave"
	paymentService "github.com/hazari-app/hazari-backend-go/internal/service/payment"
	reportService "github.com/hazari-app/hazari-backend-go/internal/service/report"
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
	labourRepo := postgresql.NewLabourRepository(db)
	contractorRepo := postgresql.NewContractorRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	labourSvc := labourService.NewLabourService(db, labourRepo, userRepo, attendanceRepo)
	authSvc := authService.NewAuthService(userRepo, labourSvc, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, fileService)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, labourRepo)
	contractorSvc := contractorService.NewContractorService(contractorRepo, userRepo)
	paymentSvc := paymentService.NewPaymentService()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	labourHandler := appHTTP.NewLabourHandler(labourSvc, attendanceSvc, leaveSvc)
	contractorHandler := appHTTP.NewContractorHandler(contractorSvc, leaveSvc, reportSvc, paymentSvc)
	uploadHandler := appHTTP.NewUploadHandler(fileService)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		authHandler,
		labourHandler,
		contractorHandler,
		uploadHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
