package main

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"firebase.google.com/go/v4/auth"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tailorapp_echo/internal/handlers"
	appMiddleware "tailorapp_echo/internal/middleware"
	"tailorapp_echo/internal/services"
	"tailorapp_echo/internal/tasks"
)

// TemplateRenderer is a custom html/template renderer for Echo.
// Uses per-page template cloning to allow each page to define its own blocks.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer creates a template renderer with per-page cloning
func NewTemplateRenderer() *TemplateRenderer {
	templates := make(map[string]*template.Template)

	// Parse base layout and partials as the foundation
	baseTemplate := template.Must(template.ParseGlob("web/templates/layouts/*.html"))

	// Find all page templates and clone base for each
	pages, err := filepath.Glob("web/templates/pages/*.html")
	if err != nil {
		log.Fatal(err)
	}

	for _, page := range pages {
		pageName := filepath.Base(page)
		pageTemplate := template.Must(baseTemplate.Clone())
		template.Must(pageTemplate.ParseFiles(page))
		templates[pageName] = pageTemplate
	}

	// Standalone templates (like login) don't use the base layout
	standalonePages, _ := filepath.Glob("web/templates/*.html")
	for _, page := range standalonePages {
		pageName := filepath.Base(page)
		if _, exists := templates[pageName]; !exists {
			templates[pageName] = template.Must(template.ParseFiles(page))
		}
	}

	return &TemplateRenderer{templates: templates}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	if tmpl.Lookup("base") != nil {
		return tmpl.ExecuteTemplate(w, "base", data)
	}
	return tmpl.Execute(w, data)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := services.SeedSettings(db); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	// The daily return-reminder sweep is executed by cmd/worker
	if err := tasks.ReturnReminderTask.EnsureScheduled(db); err != nil {
		log.Printf("Warning: could not schedule return reminders: %v", err)
	}

	// Redis is optional; without it the dashboard just queries every time
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable: %v", err)
			cache = nil
		}
	}

	authClient := func() *auth.Client {
		credPath := os.Getenv("FIREBASE_CREDENTIALS")
		if credPath == "" {
			log.Println("Warning: FIREBASE_CREDENTIALS not set, auth disabled")
			return nil
		}
		client, err := services.InitFirebase(credPath)
		if err != nil {
			log.Printf("Warning: Firebase init failed: %v", err)
			return nil
		}
		return client
	}()

	storage := services.NewStorageService()
	if err := storage.EnsureDir(); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	ledger := services.NewLedgerService(db)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = NewTemplateRenderer()
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Static("/static", "web/static")
	e.Static("/client-profiles", storage.Dir())

	authHandler := handlers.NewAuthHandler(authClient)
	dashboardHandler := handlers.NewDashboardHandler(db, cache)
	clientHandler := handlers.NewClientHandler(db, cache, storage)
	measurementHandler := handlers.NewMeasurementHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, ledger)
	reportHandler := handlers.NewReportHandler(db, ledger)
	settingsHandler := handlers.NewSettingsHandler(db)

	// Public auth routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.GET("/auth/logout", authHandler.HandleLogout)

	// Protected
	app := e.Group("")
	app.Use(appMiddleware.RequireAuth(authClient))

	app.GET("/", dashboardHandler.Dashboard)

	// Clients
	app.GET("/clients", clientHandler.ListClients)
	app.POST("/clients/save", clientHandler.SaveClient)
	app.GET("/clients/view/:id", clientHandler.ViewClient)
	app.GET("/clients/delete/:id", clientHandler.DeleteClient)

	// Measurements
	app.POST("/clients/addMeasurement/:id", measurementHandler.AddDressMeasurement)
	app.POST("/clients/updateMeasurement/:measurementId", measurementHandler.UpdateDressMeasurement)
	app.GET("/clients/deleteMeasurement/:measurementId", measurementHandler.DeleteDressMeasurement)
	app.GET("/clients/copyMeasurement/:id", measurementHandler.CopyDressMeasurement)
	app.POST("/clients/addWaistcoatMeasurement/:id", measurementHandler.AddWaistcoatMeasurement)
	app.POST("/clients/updateWaistcoatMeasurement/:id", measurementHandler.UpdateWaistcoatMeasurement)
	app.GET("/clients/deleteWaistcoatMeasurement/:id", measurementHandler.DeleteWaistcoatMeasurement)
	app.GET("/clients/copyWaistcoatMeasurement/:id", measurementHandler.CopyWaistcoatMeasurement)

	// Payments and installments
	app.GET("/payments/client/:clientId", paymentHandler.ListPayments)
	app.POST("/payments/save", paymentHandler.SavePayment)
	app.GET("/payments/delete/:id", paymentHandler.DeletePayment)
	app.POST("/payments/installment/add", paymentHandler.AddInstallment)
	app.POST("/payments/installment/edit", paymentHandler.EditInstallment)
	app.GET("/payments/installment/delete/:installmentId", paymentHandler.DeleteInstallment)

	// Printing and export
	app.GET("/print/dress/:id", reportHandler.PrintDressSlip)
	app.GET("/print/waistcoat/:id", reportHandler.PrintWaistcoatSlip)
	app.GET("/print/payment/:id", reportHandler.PrintPaymentSlip)
	app.GET("/print/report", reportHandler.PrintPaymentReport)
	app.GET("/export/report.xlsx", reportHandler.ExportPaymentReport)

	// Settings
	app.GET("/settings", settingsHandler.SettingsPage)
	app.POST("/settings", settingsHandler.SaveSettings)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server listening on :%s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatal(err)
	}
}
