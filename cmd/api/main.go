package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"influence-os/cmd/api/router"
	"influence-os/cmd/api/services"
	"influence-os/cmd/internal/logger"
	"influence-os/config"
	"influence-os/db"
	"influence-os/generator"
	"influence-os/repositories"
)

// @title           Influence OS API
// @version         1.0
// @description     API for generating LinkedIn content with Google Gemini and publishing it through LinkedIn OAuth.
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	gdb, err := db.Open(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(gdb)

	gen, err := generator.New(context.Background(), os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}

	postSvc := services.NewPostService(gen, repositories.NewPostRepository(gdb))

	authSvc, err := services.NewAuthServiceFromEnv(cfg.LinkedIn.Scopes)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(cfg, postSvc, authSvc)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
