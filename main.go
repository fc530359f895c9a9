package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carcare/config"
	"carcare/database"
	bookingRepo "carcare/database/repository/booking"
	catalogRepo "carcare/database/repository/catalog"
	"carcare/handlers"
	"carcare/middleware"
	"carcare/models"
	"carcare/routes"
	"carcare/services/booking"
	"carcare/services/catalog"
	"carcare/services/media"
	"carcare/services/notification"
	"carcare/utils"

	"github.com/gin-gonic/gin"
)

// catalogKinds pairs every catalog entity family with its route segment and
// the response key the admin dashboard reads its list from.
var catalogKinds = []struct {
	path     string
	listKey  string
	resource string
	factory  catalogRepo.Factory
}{
	{"services", "services", "Service", func() models.Entity { return &models.Service{} }},
	{"detailed-services", "services", "Detailed service", func() models.Entity { return &models.DetailedService{} }},
	{"special-services", "services", "Special service", func() models.Entity { return &models.SpecialService{} }},
	{"special-service-variants", "variants", "Special service variant", func() models.Entity { return &models.SpecialServiceVariant{} }},
	{"vehicle-brands", "brands", "Vehicle brand", func() models.Entity { return &models.VehicleBrand{} }},
	{"car-brands", "brands", "Car brand", func() models.Entity { return &models.CarBrand{} }},
	{"car-models", "models", "Car model", func() models.Entity { return &models.CarModel{} }},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.StartHealthMonitor(database.MongoClient)

	mediaService, err := media.NewCloudinaryMediaService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and services.
	notifier := notification.NewMailNotificationService()
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo.NewMongoBookingRepo(),
		Notifier: notifier,
	}

	catalogHandlers := make([]*handlers.CatalogHandler, 0, len(catalogKinds))
	for _, kind := range catalogKinds {
		svc := &catalog.DefaultCatalogService{
			Repo:    catalogRepo.NewMongoCatalogRepo(kind.resource, kind.factory),
			Factory: kind.factory,
		}
		catalogHandlers = append(catalogHandlers, handlers.NewCatalogHandler(svc, kind.factory, kind.path, kind.listKey))
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService),
		Media:    handlers.NewMediaHandler(mediaService),
		Catalogs: catalogHandlers,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
