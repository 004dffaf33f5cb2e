package main

import (
	"Foodgram-Backend/cmd/config"
	migration "Foodgram-Backend/cmd/database/migrate"
	"Foodgram-Backend/cmd/database/seed"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/pkg/ingredient"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	seedPath := flag.String("seed", "", "import ingredients from a JSON file and exit")
	flag.Parse()

	utils.LoadConfig()

	flush := config.InitSentry()
	defer flush()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer config.CloseDB(db)

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	if *seedPath != "" {
		service := ingredient.NewIngredientService(ingredient.NewIngredientRepository(db))
		if err := seed.Ingredients(context.Background(), service, *seedPath); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		port := utils.GetConfig("APP_PORT")
		log.Infof("server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Errorf("server stopped: %v", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}
}
