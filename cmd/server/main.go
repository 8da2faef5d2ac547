package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/retail_shop/internal/config"
	"github.com/Skotchmaster/retail_shop/internal/handlers"
	"github.com/Skotchmaster/retail_shop/internal/logging"
	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/repo"
	"github.com/Skotchmaster/retail_shop/internal/service"
	httpserver "github.com/Skotchmaster/retail_shop/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})

	r := repo.NewGormRepo(db)
	authSvc := &service.AuthService{Repo: r}
	catalogSvc := &service.CatalogService{Repo: r}
	searchSvc := &service.SearchService{Repo: r}
	cartSvc := &service.CartService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}
	reportSvc := &service.ReportService{Repo: r}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:             db,
		JWTSecret:      jwtSecret,
		AuthHandler:    &handlers.AuthHandler{Auth: authSvc, JWTSecret: jwtSecret, Producer: prod},
		ProductHandler: &handlers.ProductHandler{Catalog: catalogSvc, Search: searchSvc, Producer: prod, JWTSecret: jwtSecret},
		SearchHandler:  &handlers.SearchHandler{Search: searchSvc, Producer: prod, JWTSecret: jwtSecret},
		CartHandler:    &handlers.CartHandler{Cart: cartSvc, Orders: orderSvc, Producer: prod, JWTSecret: jwtSecret},
		OrderHandler:   &handlers.OrderHandler{Orders: orderSvc, JWTSecret: jwtSecret},
		ReportHandler:  &handlers.ReportHandler{Reports: reportSvc, JWTSecret: jwtSecret},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "addr", configuration.HTTP_ADDR)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
