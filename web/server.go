package web

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/config"
	"github.com/lacsuuuu/ergin-hardware/web/handlers"
	"github.com/lacsuuuu/ergin-hardware/web/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server. The store client and optional
// cache are passed in here and injected into handlers, never reached
// through globals.
func NewServer(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ergin-hardware",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.SQLDebug())

	setupRoutes(app, cfg, db, cache)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler is the single mapping from error kind to HTTP status.
// Full error detail is logged with the request id; clients only see the
// taxonomy message.
func errorHandler(c *fiber.Ctx, err error) error {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	log.Printf("ERROR [%s %s] rid=%s: %v", c.Method(), c.Path(), requestID, err)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB, cache *redis.Client) {
	// Liveness
	app.Get("/", handlers.Health)
	app.Get("/api/health", handlers.Health)

	api := app.Group("/api")

	// Authentication
	api.Post("/login", middleware.RateLimiter(cache), handlers.Login(cfg, db))

	// Suppliers
	api.Get("/suppliers", handlers.SupplierList(db))
	api.Post("/suppliers", handlers.SupplierCreate(db))

	// Inventory
	api.Get("/inventory", handlers.InventoryList(db))
	api.Post("/product", handlers.ProductCreate(db, cache))
	api.Delete("/inventory/:id", handlers.ProductDelete(db, cache))

	// Customers
	api.Get("/clients", handlers.ClientList(db))
	api.Post("/clients", handlers.ClientCreate(db))

	// Transaction workflow, attributed to the authenticated employee
	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, db)
	api.Post("/restock", requireAuth, handlers.Restock(db, cache))
	api.Post("/sales", requireAuth, handlers.Sales(db, cache))

	// Dashboard and reporting
	api.Get("/dashboard", handlers.Dashboard(db, cache))
	api.Get("/sales-record", handlers.SalesRecord(db))
	api.Get("/sales/:id", handlers.SalesView(db))
	api.Get("/reports/sales", handlers.SalesReport(db))

	// Employees and accounts
	api.Get("/employees", handlers.EmployeeList(db))
	api.Post("/employees", handlers.EmployeeCreate(cfg, db))

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", handlers.GetSQLLogs)
	api.Delete("/debug/sql", handlers.ClearSQLLogs)
}
