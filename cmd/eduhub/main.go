package main

import (
	"context"
	"log"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/cli"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/config"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
