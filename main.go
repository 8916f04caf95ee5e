package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/config"
	"github.com/Paul-Briman/lumina-photography/internal/db"
	"github.com/Paul-Briman/lumina-photography/internal/handler"
	"github.com/Paul-Briman/lumina-photography/internal/middleware"
	"github.com/Paul-Briman/lumina-photography/internal/repository"
	"github.com/Paul-Briman/lumina-photography/internal/router"
	"github.com/Paul-Briman/lumina-photography/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "configuration directory")
	seed := flag.Bool("seed", false, "install demo fixtures and exit")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	appService := service.NewAppService(repository.NewRepositories(db.DB), nil)

	// Seeding is a one-shot mode: never part of request-serving startup.
	if *seed {
		if err := appService.SeedDemoData(); err != nil {
			log.Fatal("seeding failed: ", err)
		}
		return
	}

	service.InitRedis()

	uploadPath := config.Get().Upload.Path
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("cannot create upload directory: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	router.NewRouter(handler.NewHandler(appService)).Init(r)

	// serve stored photo files with long-lived cache headers
	r.Group(config.Get().Upload.URLPrefix, middleware.StaticCache()).
		StaticFS("", gin.Dir(uploadPath, false))

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("lumina listening on :%s", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown: ", err)
	}
	log.Println("server exited")
}
