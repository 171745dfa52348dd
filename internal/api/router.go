package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rommelaere-renov/site-backend/internal/api/handler"
	"github.com/rommelaere-renov/site-backend/internal/api/middleware"
	"github.com/rommelaere-renov/site-backend/internal/core/service"
	mongodb "github.com/rommelaere-renov/site-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/rommelaere-renov/site-backend/internal/infrastructure/db/redis"
)

// Options carries the deployment-dependent knobs the router needs.
type Options struct {
	SessionSecret string
	CookieDomain  string
	// SecureCookies marks the session cookie Secure; enable in production.
	SecureCookies bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier service.Notifier, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("renov"))
	e.Use(middleware.Session(opts.SessionSecret, log))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	services := mongodb.NewServiceRepository(db)
	projects := mongodb.NewProjectRepository(db)
	images := mongodb.NewProjectImageRepository(db)
	contactInfo := mongodb.NewContactInfoRepository(db)
	messages := mongodb.NewMessageRepository(db)
	testimonials := mongodb.NewTestimonialRepository(db)
	limiter := redisdb.NewSubmissionLimiter(rdb)

	authHandler := handler.NewAuthHandler(
		service.NewAuthService(users, opts.SessionSecret, 0, log),
		handler.CookieOptions{Domain: opts.CookieDomain, Secure: opts.SecureCookies},
	)
	contentHandler := handler.NewContentHandler(
		service.NewContentService(services, projects, images, contactInfo, log),
	)
	contactHandler := handler.NewContactHandler(
		service.NewContactService(messages, limiter, notifier, log),
	)
	testimonialHandler := handler.NewTestimonialHandler(
		service.NewTestimonialService(testimonials, limiter, log),
	)
	adminHandler := handler.NewAdminHandler(
		service.NewAdminService(users, services, projects, messages, testimonials, log),
	)

	admin := middleware.RequireAdmin()

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)

	// --- Content: public reads ---
	e.GET("/api/content/services", contentHandler.GetServices)
	e.GET("/api/content/services/:id", contentHandler.GetService)
	e.GET("/api/content/projects", contentHandler.GetProjects)
	e.GET("/api/content/projects/:id", contentHandler.GetProject)
	e.GET("/api/content/projects/:id/images", contentHandler.GetProjectImages)
	e.GET("/api/content/contact-info", contentHandler.GetContactInfo)

	// --- Content: admin mutations ---
	e.POST("/api/content/services", contentHandler.CreateService, admin)
	e.PATCH("/api/content/services/:id", contentHandler.UpdateService, admin)
	e.DELETE("/api/content/services/:id", contentHandler.DeleteService, admin)
	e.POST("/api/content/projects", contentHandler.CreateProject, admin)
	e.PATCH("/api/content/projects/:id", contentHandler.UpdateProject, admin)
	e.DELETE("/api/content/projects/:id", contentHandler.DeleteProject, admin)
	e.POST("/api/content/project-images", contentHandler.CreateProjectImage, admin)
	e.DELETE("/api/content/project-images/:id", contentHandler.DeleteProjectImage, admin)
	e.PATCH("/api/content/contact-info", contentHandler.UpdateContactInfo, admin)

	// --- Contact: public form, admin inbox ---
	e.POST("/api/contact/messages", contactHandler.CreateMessage)
	e.GET("/api/contact/messages", contactHandler.GetMessages, admin)
	e.GET("/api/contact/messages/:id", contactHandler.GetMessage, admin)
	e.POST("/api/contact/messages/:id/read", contactHandler.MarkAsRead, admin)
	e.DELETE("/api/contact/messages/:id", contactHandler.DeleteMessage, admin)

	// --- Testimonials ---
	e.GET("/api/testimonials", testimonialHandler.List)
	e.POST("/api/testimonials", testimonialHandler.Create)
	e.GET("/api/testimonials/pending", testimonialHandler.GetPending, admin)
	e.POST("/api/testimonials/:id/approve", testimonialHandler.Approve, admin)
	e.POST("/api/testimonials/:id/reject", testimonialHandler.Reject, admin)
	e.DELETE("/api/testimonials/:id", testimonialHandler.Delete, admin)

	// --- Admin dashboard ---
	e.GET("/api/admin/stats", adminHandler.GetStats, admin)
	e.GET("/api/admin/users", adminHandler.GetUsers, admin)
	e.POST("/api/admin/users", adminHandler.CreateUser, admin)
	e.PATCH("/api/admin/users/:id", adminHandler.UpdateUser, admin)
	e.DELETE("/api/admin/users/:id", adminHandler.DeleteUser, admin)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
