package main

import (
	"context"
	"os"
	"time"

	"oceanbrew/internal/auth"
	"oceanbrew/internal/catalog"
	"oceanbrew/internal/db"
	"oceanbrew/internal/middleware"
	"oceanbrew/internal/order"
	"oceanbrew/internal/receipt"
	"oceanbrew/internal/report"
	"oceanbrew/internal/settings"
	"oceanbrew/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ADMIN_PASSWORD_HASH",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			logrus.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	var archiver report.Archiver
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			logrus.Fatal("❌ R2 init failed: ", err)
		}
		archiver = r2Client
	}

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(os.Getenv("ADMIN_PASSWORD_HASH"))
	authHandler := auth.NewHandler(authService)

	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	settingsRepo := settings.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	orderService := order.NewService(orderRepo, catalogService)
	reportService := report.NewService(orderRepo, archiver)
	settingsService := settings.NewService(settingsRepo)

	// The drink menu ships with the app; seed it on first boot.
	seeded, err := catalogService.SeedDefaultMenu(context.Background())
	if err != nil {
		logrus.Fatal("❌ Menu seed failed: ", err)
	}
	if seeded > 0 {
		logrus.Infof("Seeded default menu (%d items)", seeded)
	}

	// Printer transport is optional. Without one, receipts fall back
	// to display text and the UI shows them instead.
	printer := receipt.NewPrinter(nil)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	orderHandler := order.NewHandler(orderService)
	reportHandler := report.NewHandler(reportService, orderService)
	settingsHandler := settings.NewHandler(settingsService)
	receiptHandler := receipt.NewHandler(printer, orderService, settingsService)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	r.GET("/menu", catalogHandler.ListMenu)
	r.GET("/menu/add-ons", catalogHandler.ListAddOns)

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("/:id/done", orderHandler.MarkDone)
		orders.POST("/:id/receipt", receiptHandler.Print)
	}

	// ───────────────────────── REPORT ROUTES ─────────────────────────
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/dashboard", reportHandler.Dashboard)
		reports.GET("/export", reportHandler.Export)
	}

	// ───────────────────────── SETTINGS ─────────────────────────
	r.GET("/settings", settingsHandler.Get)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		admin.PUT("/menu", catalogHandler.SaveItem)
		admin.DELETE("/menu/:id", catalogHandler.DeleteItem)
		admin.PUT("/settings", settingsHandler.Save)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	logrus.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
