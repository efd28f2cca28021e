// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cache"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/handlers"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/middleware"
	_ "github.com/nmzabith/thermal-printer-label-app-sub001/docs"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app            *fiber.App
	authMiddleware *middleware.AuthMiddleware

	authHandler   handlers.AuthHandlerInterface
	configHandler handlers.LabelConfigHandlerInterface
	designHandler handlers.LabelDesignHandlerInterface
	fontHandler   handlers.FontSettingsHandlerInterface
	printHandler  handlers.PrintHandlerInterface
	iconHandler   handlers.IconHandlerInterface
	reportHandler handlers.ReportHandlerInterface
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	authMiddleware *middleware.AuthMiddleware,
	authHandler handlers.AuthHandlerInterface,
	configHandler handlers.LabelConfigHandlerInterface,
	designHandler handlers.LabelDesignHandlerInterface,
	fontHandler handlers.FontSettingsHandlerInterface,
	printHandler handlers.PrintHandlerInterface,
	iconHandler handlers.IconHandlerInterface,
	reportHandler handlers.ReportHandlerInterface,
) Router {
	// Configure Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Label Printing API",
		ServerHeader: "label-service",
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:            app,
		authMiddleware: authMiddleware,
		authHandler:    authHandler,
		configHandler:  configHandler,
		designHandler:  designHandler,
		fontHandler:    fontHandler,
		printHandler:   printHandler,
		iconHandler:    iconHandler,
		reportHandler:  reportHandler,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	// Global middleware
	r.setupMiddleware()

	// Prometheus scrape endpoint (outside the API group and rate limits)
	r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	// API documentation route (development only)
	if os.Getenv("APP_ENV") == "development" || os.Getenv("APP_ENV") == "local" {
		api.Get("/swagger.json", r.serveSwaggerJSON)
		// Serve Swagger UI
		r.app.Get("/swagger", r.serveSwaggerUI)
		log.Println("API documentation enabled for development")
	}

	// Apply general rate limiting to all API routes (aligned with nginx)
	api.Use(limiter.New(limiter.Config{
		Max:        2000,            // Maximum 2000 requests (matches nginx api zone)
		Expiration: 1 * time.Minute, // Per minute
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP() // Rate limit by IP
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			// Skip rate limiting for health checks
			return c.Path() == "/api/v1/health"
		},
	}))

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")

	// Apply stricter rate limiting to auth endpoints (aligned with nginx)
	auth.Use(limiter.New(limiter.Config{
		Max:        20,              // Maximum 20 requests (matches nginx auth zone)
		Expiration: 1 * time.Minute, // Per minute
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP() // Rate limit by IP
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
	}))

	// Auth endpoints
	auth.Get("/captcha", r.authHandler.GetCaptcha)
	auth.Post("/login", r.authHandler.Login)
	auth.Post("/refresh", r.authHandler.RefreshToken)
	auth.Post("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate())

	// Label stock endpoints
	configs := api.Group("/label-configs", r.authMiddleware.Authenticate())
	configs.Post("/", r.configHandler.CreateLabelConfig)
	configs.Get("/", r.configHandler.ListLabelConfigs)
	configs.Get("/:uuid", r.configHandler.GetLabelConfig)
	configs.Put("/:uuid", r.configHandler.UpdateLabelConfig)
	configs.Delete("/:uuid", r.configHandler.DeleteLabelConfig)

	// Design endpoints
	designs := api.Group("/designs", r.authMiddleware.Authenticate())
	designs.Post("/default-layout", r.designHandler.GenerateDefaultLayout)
	designs.Post("/", r.designHandler.CreateLabelDesign)
	designs.Get("/", r.designHandler.ListLabelDesigns)
	designs.Get("/:uuid", r.designHandler.GetLabelDesign)
	designs.Put("/:uuid", r.designHandler.UpdateLabelDesign)
	designs.Delete("/:uuid", r.designHandler.DeleteLabelDesign)

	// Font profile endpoints
	fonts := api.Group("/font-settings", r.authMiddleware.Authenticate())
	fonts.Get("/", r.fontHandler.ListFontPresets)
	fonts.Get("/:name", r.fontHandler.GetFontSettings)
	fonts.Put("/:name", r.fontHandler.SaveFontSettings)

	// Rendering and dispatch endpoints
	printing := api.Group("/print", r.authMiddleware.Authenticate())
	printing.Post("/preview", r.printHandler.Preview)
	printing.Post("/", r.printHandler.Print)
	printing.Get("/jobs", r.printHandler.ListPrintJobs)
	printing.Get("/jobs/:uuid", r.printHandler.GetPrintJob)

	// Icon endpoints
	icons := api.Group("/icons", r.authMiddleware.Authenticate())
	icons.Post("/", r.iconHandler.UploadIcon)
	icons.Get("/", r.iconHandler.ListIcons)
	icons.Delete("/:uuid", r.iconHandler.DeleteIcon)

	// Report endpoints
	reports := api.Group("/reports", r.authMiddleware.Authenticate())
	reports.Get("/print-jobs", r.reportHandler.ExportPrintJobs)
	reports.Get("/audit-trail", r.reportHandler.ExportAuditTrail)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// SetupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "DENY",
		HSTSMaxAge:                31536000, // 1 year
		HSTSExcludeSubdomains:     false,
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' https:; connect-src 'self' https:; frame-ancestors 'none';",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	}))

	// CORS middleware; the desktop and mobile clients talk to the API
	// from their own origins
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://labels.example.com",
			"https://api.labels.example.com",
			"http://localhost:5173",
		},
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"Cache-Control",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"X-Response-Time",
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
		Next: func(c fiber.Ctx) bool {
			// Skip compression for image payloads
			contentType := c.Get("Content-Type")
			return contains(contentType, "image/")
		},
	}))

	// Cache middleware for static content
	r.app.Use(cache.New(cache.Config{
		Next: func(c fiber.Ctx) bool {
			// Only cache GET requests to specific endpoints
			return c.Method() != "GET" || !contains(c.Path(), "/health")
		},
		Expiration:   30 * time.Minute,
		DisableCacheControl: false,
	}))

	// Advanced logging middleware
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			// Skip logging for health checks in production
			return c.Path() == "/api/v1/health"
		},
	}))

	// Prometheus HTTP metrics
	r.app.Use(middleware.Metrics())

	// Custom security middleware
	r.app.Use(r.securityMiddleware)

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			// Log panic with request context
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Custom security middleware
func (r *FiberRouter) securityMiddleware(c fiber.Ctx) error {
	// Add security headers
	c.Set("X-Response-Time", utils.UTCNow().Format(time.RFC3339))
	c.Set("Server", "label-service")

	// Continue to next middleware
	return c.Next()
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   "1.0.0",
			"service":   "label-service",
		},
	})
}

// Serve Swagger UI HTML page
func (r *FiberRouter) serveSwaggerUI(c fiber.Ctx) error {
	htmlContent := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Label Printing API - Swagger UI</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css" />
    <style>
        html {
            box-sizing: border-box;
            overflow: -moz-scrollbars-vertical;
            overflow-y: scroll;
        }
        *, *:before, *:after {
            box-sizing: inherit;
        }
        body {
            margin:0;
            background: #fafafa;
        }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-standalone-preset.js"></script>
    <script>
        window.onload = function() {
            const ui = SwaggerUIBundle({
                url: '/api/v1/swagger.json',
                dom_id: '#swagger-ui',
                deepLinking: true,
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIStandalonePreset
                ],
                plugins: [
                    SwaggerUIBundle.plugins.DownloadUrl
                ],
                layout: "StandaloneLayout",
                validatorUrl: null
            });
        };
    </script>
</body>
</html>`

	c.Set("Content-Type", "text/html")
	return c.SendString(htmlContent)
}

// Serve Swagger JSON specification
func (r *FiberRouter) serveSwaggerJSON(c fiber.Ctx) error {
	// Read the generated swagger.json file
	swaggerData, err := os.ReadFile("docs/swagger.json")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Message: "Failed to load Swagger documentation",
			Error: dto.ErrorDetail{
				Code: "SWAGGER_LOAD_ERROR",
			},
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(swaggerData)
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	// Default error code
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a fiber.*Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Log the error
	log.Printf("Error %d: %v", code, err)

	// Get RequestID for tracing
	requestID := c.Locals("requestid")

	// Return JSON error response
	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// Helper functions

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// contains checks if a string contains a substring
func contains(str, substr string) bool {
	return strings.Contains(str, substr)
}
