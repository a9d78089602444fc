package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/estateops/crm-backend/docs"
	"github.com/estateops/crm-backend/internal/api/handler"
	"github.com/estateops/crm-backend/internal/api/middleware"
	"github.com/estateops/crm-backend/internal/core/ports"
	"github.com/estateops/crm-backend/internal/core/service"
	"github.com/estateops/crm-backend/internal/infrastructure/config"
	mongorepo "github.com/estateops/crm-backend/internal/infrastructure/db/mongo"
	redisinfra "github.com/estateops/crm-backend/internal/infrastructure/db/redis"
	"github.com/estateops/crm-backend/internal/infrastructure/provider"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The credential store is picked once here from AUTH_STRATEGY; token
// issuance, login, registration, and per-request principal resolution all
// flow through that single instance, so the local and delegated identity
// spaces can never mix within one deployment.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	leadRepo := mongorepo.NewLeadRepository(db)
	enquiryRepo := mongorepo.NewEnquiryRepository(db)
	developerRepo := mongorepo.NewDeveloperRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	inventoryRepo := mongorepo.NewInventoryRepository(db)
	landParcelRepo := mongorepo.NewLandParcelRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)

	// --- Identity scheme selection ---
	var store ports.CredentialStore
	switch cfg.AuthStrategy {
	case "local":
		store = service.NewLocalCredentialStore(employeeRepo)
	case "delegated":
		client := provider.New(provider.Config{
			BaseURL: cfg.Provider.URL,
			APIKey:  cfg.Provider.APIKey,
		})
		store = service.NewDelegatedCredentialStore(client, employeeRepo, log)
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.AuthStrategy)
	}

	tokens := service.NewJWTTokens(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisinfra.NewLoginLimiter(rdb)

	// --- Services ---
	authService := service.NewAuthService(store, tokens, limiter, log)
	employeeService := service.NewEmployeeService(store, employeeRepo, log)
	leadService := service.NewLeadService(leadRepo, log)
	enquiryService := service.NewEnquiryService(enquiryRepo, log)
	developerService := service.NewDeveloperService(developerRepo)
	projectService := service.NewProjectService(projectRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	landParcelService := service.NewLandParcelService(landParcelRepo)
	contactService := service.NewContactService(contactRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	leadHandler := handler.NewLeadHandler(leadService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	developerHandler := handler.NewDeveloperHandler(developerService)
	projectHandler := handler.NewProjectHandler(projectService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	landParcelHandler := handler.NewLandParcelHandler(landParcelService)
	contactHandler := handler.NewContactHandler(contactService)

	auth := middleware.Auth(tokens, store)
	admin := middleware.RequireAdmin()

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register", authHandler.Register)
	authGroup.GET("/me", authHandler.Me, auth)
	authGroup.POST("/logout", authHandler.Logout, auth)

	// --- Employees (reads open to any active principal, writes admin-only) ---
	employees := e.Group("/api/employees", auth)
	employees.GET("/:id", employeeHandler.Get)
	employees.GET("", employeeHandler.List, admin)
	employees.POST("", employeeHandler.Create, admin)
	employees.PUT("/:id", employeeHandler.Update, admin)
	employees.DELETE("/:id", employeeHandler.Delete, admin)

	// --- Ownership-scoped resources ---
	leads := e.Group("/api/leads", auth)
	leads.POST("", leadHandler.Create)
	leads.GET("", leadHandler.List)
	leads.GET("/:id", leadHandler.Get)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)

	enquiries := e.Group("/api/enquiries", auth)
	enquiries.POST("", enquiryHandler.Create)
	enquiries.GET("", enquiryHandler.List)
	enquiries.GET("/:id", enquiryHandler.Get)
	enquiries.PUT("/:id", enquiryHandler.Update)
	enquiries.DELETE("/:id", enquiryHandler.Delete)

	// --- Catalog resources (any active principal) ---
	registerCatalog(e, "/api/developers", auth, developerHandler.Create, developerHandler.List, developerHandler.Get, developerHandler.Update, developerHandler.Delete)
	registerCatalog(e, "/api/projects", auth, projectHandler.Create, projectHandler.List, projectHandler.Get, projectHandler.Update, projectHandler.Delete)
	registerCatalog(e, "/api/inventory", auth, inventoryHandler.Create, inventoryHandler.List, inventoryHandler.Get, inventoryHandler.Update, inventoryHandler.Delete)
	registerCatalog(e, "/api/land-parcels", auth, landParcelHandler.Create, landParcelHandler.List, landParcelHandler.Get, landParcelHandler.Update, landParcelHandler.Delete)
	registerCatalog(e, "/api/contacts", auth, contactHandler.Create, contactHandler.List, contactHandler.Get, contactHandler.Update, contactHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// registerCatalog wires the uniform CRUD route shape shared by the catalog
// collections.
func registerCatalog(e *echo.Echo, prefix string, auth echo.MiddlewareFunc, create, list, get, update, del echo.HandlerFunc) {
	g := e.Group(prefix, auth)
	g.POST("", create)
	g.GET("", list)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", del)
}
