package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"event-registration-system/handlers"
	"event-registration-system/services"
	"event-registration-system/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()
	app.Use(logger.New())

	// The registration pages and the admin panel are served from
	// separate origins, so CORS is driven by ALLOWED_ORIGINS.
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOriginsString,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	singleStore := store.NewSingleStore(db)
	survivalStore := store.NewTeamStore(db, store.TableSurvival)
	codeCortexStore := store.NewTeamStore(db, store.TableCodeCortex)

	if err := singleStore.Migrate(); err != nil {
		log.Fatal("failed to migrate dataregs:", err)
	}
	for _, ts := range []*store.TeamStore{survivalStore, codeCortexStore} {
		if err := ts.Migrate(); err != nil {
			log.Fatalf("failed to migrate %s: %v", ts.Table(), err)
		}
	}

	regService := services.NewRegistrationService(singleStore, survivalStore, codeCortexStore)
	adminService := services.NewAdminService(singleStore, survivalStore, codeCortexStore)

	adminService.StartStatsLogger(10 * time.Minute)

	handlers.SetupRegistrationRoutes(app, regService)
	handlers.SetupAdminRoutes(app, adminService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
