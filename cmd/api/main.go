package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/config"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/database"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/health"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/middleware"
	natspkg "github.com/code01-66/Digi-Sanchaar/internal/pkg/nats"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/server"
	"github.com/code01-66/Digi-Sanchaar/services/alert"
	alertGateway "github.com/code01-66/Digi-Sanchaar/services/alert/gateway"
	alertHTTP "github.com/code01-66/Digi-Sanchaar/services/alert/handler/http"
	alertUsecase "github.com/code01-66/Digi-Sanchaar/services/alert/usecase"
	locationHandler "github.com/code01-66/Digi-Sanchaar/services/location/handler"
	locationHTTP "github.com/code01-66/Digi-Sanchaar/services/location/handler/http"
	locationRepository "github.com/code01-66/Digi-Sanchaar/services/location/repository"
	locationUsecase "github.com/code01-66/Digi-Sanchaar/services/location/usecase"
	userHTTP "github.com/code01-66/Digi-Sanchaar/services/user/handler/http"
	userRepository "github.com/code01-66/Digi-Sanchaar/services/user/repository"
	userUsecase "github.com/code01-66/Digi-Sanchaar/services/user/usecase"
)

func main() {
	appName := "digi-sanchaar-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Components register their cleanup here; the manager runs them in
	// registration order once the server has drained.
	shutdownMgr := server.NewShutdownManager(zapLogger)

	// PostgreSQL holds users, contacts and push subscriptions
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error {
		return postgresClient.Close()
	})

	// Redis holds the geohash-indexed location store
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error {
		return redisClient.Close()
	})

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Repositories
	userRepo := userRepository.NewUserRepo(postgresClient.GetDB())
	locationRepo := locationRepository.NewLocationRepository(redisClient, configs.Alert.GeohashPrecision)

	// Notification gateways. An unconfigured channel leaves its gateway
	// nil and the dispatcher reports the channel as skipped.
	var pushGW alert.PushSender
	if configs.Push.VAPIDPublicKey != "" && configs.Push.VAPIDPrivateKey != "" {
		pushGW = alertGateway.NewPushGW(configs.Push)
	} else {
		zapLogger.Warn("Web Push gateway not configured, push channel disabled")
	}

	var emailGW alert.EmailSender
	if gw, err := alertGateway.NewEmailGW(configs.Email); err != nil {
		zapLogger.Warn("Email gateway not configured, email channel disabled", logger.Err(err))
	} else {
		emailGW = gw
	}

	var callGW alert.CallSender
	if configs.Call.AccountSID != "" && configs.Call.AuthToken != "" {
		callGW = alertGateway.NewCallGW(configs.Call, zapLogger)
	} else {
		zapLogger.Warn("Call gateway not configured, call channel disabled")
	}

	alertGW := alertGateway.NewAlertGW(natsClient)

	// Use cases
	userUC := userUsecase.NewUserUC(userRepo, configs)
	locationUC := locationUsecase.NewLocationUC(locationRepo)
	alertUC := alertUsecase.NewAlertUC(locationRepo, userRepo, pushGW, emailGW, callGW, alertGW, configs)

	// HTTP handlers
	authHandler := userHTTP.NewAuthHandler(userUC)
	userHandler := userHTTP.NewUserHandler(userUC)
	locHandler := locationHTTP.NewLocationHandler(locationUC)
	sosHandler := alertHTTP.NewAlertHandler(alertUC)

	// NATS consumers
	natsHandler := locationHandler.NewNatsHandler(locationUC, natsClient)
	if err := natsHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	// Consumers drain before the connection they ride on closes
	shutdownMgr.Register(func(context.Context) error {
		natsHandler.Stop()
		natsClient.Close()
		return nil
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	e.GET("/ping", health.NewPingHandler(appName))

	e.POST("/auth/register", userHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	authenticated := e.Group("", middleware.JWTAuthMiddleware(configs.JWT))
	authenticated.PUT("/users/me/push-subscription", userHandler.SavePushSubscription)
	authenticated.POST("/users/me/contacts", userHandler.AddContact)
	authenticated.GET("/users/me/contacts", userHandler.ListContacts)
	authenticated.DELETE("/users/me/contacts/:id", userHandler.RemoveContact)
	authenticated.PUT("/locations/me", locHandler.UpdateLocation)
	authenticated.POST("/alerts/sos", sosHandler.TriggerSOS)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated abnormally", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
