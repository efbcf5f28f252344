package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hazari-app/hazari-backend-go/internal/handler/http/middleware"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	authHandler AuthHandler,
	labourHandler LabourHandler,
	contractorHandler ContractorHandler,
	uploadHandler UploadHandler,
	uploadDir string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hazari-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	// The mobile app is the only client, so no origin allowlist.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Evidence photos are served straight off disk.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.ForgotPassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/upload", func(r chi.Router) {
				r.Post("/image", uploadHandler.UploadImage)
			})

			r.Route("/labour", func(r chi.Router) {
				r.Post("/checkin", labourHandler.CheckIn)
				r.Post("/checkout/{labourID}", labourHandler.CheckOut)
				r.Get("/by-contractor/{contractorID}", labourHandler.ListByContractor)

				// Contractor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireContractor)
					r.Post("/", labourHandler.Add)
				})

				r.Route("/{labourID}", func(r chi.Router) {
					r.Get("/", labourHandler.GetProfile)
					r.Get("/dashboard", labourHandler.Dashboard)
					r.Get("/today-status", labourHandler.TodayStatus)
					r.Post("/leaves", labourHandler.CreateLeave)
					r.Get("/leaves", labourHandler.ListLeaves)
				})
			})

			// Contractor only
			r.Route("/contractor", func(r chi.Router) {
				r.Use(middleware.RequireContractor)

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/pending", contractorHandler.PendingLeaves)
					r.Put("/{leaveID}/approve", contractorHandler.ApproveLeave)
					r.Put("/{leaveID}/reject", contractorHandler.RejectLeave)
				})

				r.Get("/attendance/today", contractorHandler.TodayAttendance)
				r.Get("/payment-summary/{userID}", contractorHandler.PaymentSummary)

				r.Route("/{contractorID}", func(r chi.Router) {
					r.Get("/profile", contractorHandler.GetProfile)
					r.Get("/dashboard", contractorHandler.Dashboard)
					r.Get("/attendance/today", contractorHandler.TodayAttendanceByPath)
				})
			})
		})
	})
	return r
}
