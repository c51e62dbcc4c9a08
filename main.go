package main

import (
	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.ConnectOccupancyFeed()
	defer helper.CloseOccupancyFeed()

	helper.StartOccupancyReportScheduler()
	defer helper.StopOccupancyReportScheduler()
	helper.StartSessionCleanupScheduler()
	defer helper.StopSessionCleanupScheduler()

	router.SetupRoutes(app)
	if err := app.Listen(":" + config.ConfigOr("PORT", "8000")); err != nil {
		log.Printf("Servidor detenido: %v", err)
	}
}
