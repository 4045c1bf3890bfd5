package main

import (
	"context"
	"log"
	"time"

	"github.com/codeclinic/code_clinic/calendar"
	config "github.com/codeclinic/code_clinic/configs"
	"github.com/codeclinic/code_clinic/database"
	"github.com/codeclinic/code_clinic/handlers"
	"github.com/codeclinic/code_clinic/logging"
	"github.com/codeclinic/code_clinic/middleware"
	"github.com/codeclinic/code_clinic/routes"
	"github.com/codeclinic/code_clinic/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	zlog := logging.NewLogger(config.Config("APP_ENV"))
	defer zlog.Sync()

	database.ConnectDB()
	database.Migrate()
	middleware.InitSessionStore()

	var mirror calendar.Mirror
	credentialsFile := config.Config("GOOGLE_CREDENTIALS_FILE")
	calendarID := config.Config("GOOGLE_CALENDAR_ID")
	if credentialsFile != "" && calendarID != "" {
		m, err := calendar.NewGoogleMirror(context.Background(), zlog, credentialsFile, calendarID)
		if err != nil {
			zlog.Warn("Calendar mirror disabled", zap.Error(err))
		} else {
			mirror = m
			zlog.Info("Calendar mirror initialized", zap.String("calendar_id", calendarID))
		}
	} else {
		zlog.Warn("Calendar mirror not configured; bookings will not be synced")
	}

	accounts := services.NewAccountService(database.DB, zlog)
	slots := services.NewSlotService(database.DB, zlog)
	bookings := services.NewBookingService(database.DB, mirror, zlog)

	app := fiber.New(fiber.Config{
		AppName:       "Code Clinic",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Code Clinic",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(accounts))
	routes.SlotRoutes(app, handlers.NewSlotHandler(slots))
	routes.BookingRoutes(app, handlers.NewBookingHandler(bookings))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Println("✅ Server is running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
