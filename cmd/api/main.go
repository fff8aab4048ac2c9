package main

import (
	"context"
	"log"
	"strings"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/routes"
	"github.com/farel129/bapelit-be-sub000/utils/notifier"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()

	appCfg := config.LoadAppConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifier.StartConsumer(ctx, appCfg)

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // multipart lampiran
	})

	app.Use(recover.New())
	app.Use(logger.New())
	if len(appCfg.CORSAllowOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(appCfg.CORSAllowOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	routes.Register(app)

	log.Printf("🚀 API running on :%s", appCfg.Port)
	if err := app.Listen(":" + appCfg.Port); err != nil {
		log.Fatal(err)
	}
}
