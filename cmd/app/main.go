package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"tripwise/cmd/fx/cache_fx"
	"tripwise/cmd/fx/chat_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/embedding_fx"
	"tripwise/cmd/fx/geocode_fx"
	"tripwise/cmd/fx/google_fx"
	"tripwise/cmd/fx/itinerary_fx"
	"tripwise/cmd/fx/photo_fx"
	"tripwise/cmd/fx/places_fx"
	"tripwise/cmd/fx/trip_fx"
	"tripwise/cmd/fx/wizard_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		google_fx.Module,
		embedding_fx.Module,
		wizard_fx.Module,
		trip_fx.Module,
		places_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		geocode_fx.Module,
		photo_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	wizardController *controllers.WizardController,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	photoController *controllers.PhotoController,
	geocodeController *controllers.GeocodeController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r,
		wizardController, tripController, placesController,
		itineraryController, chatController, photoController, geocodeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	photoController *controllers.PhotoController,
	geocodeController *controllers.GeocodeController) {

	api := r.Group("/api")

	wizardGroup := api.Group("/wizard")
	wizardGroup.GET("/draft", wizardController.GetState)
	wizardGroup.POST("/steps/:step", wizardController.SubmitStep)
	wizardGroup.POST("/back", wizardController.Back)
	wizardGroup.DELETE("/draft", wizardController.Reset)

	tripGroup := api.Group("/trip")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("/add-trip", tripController.AddTrip)
	tripGroup.GET("/trips", tripController.ListTrips)
	tripGroup.GET("/trips/:id", tripController.GetTripById)

	tourGroup := api.Group("/tour")
	tourGroup.GET("/places/:destination", placesController.GetPlacesByDestination)
	tourGroup.GET("/preference-places/:destination", placesController.GetPreferencePlaces)
	tourGroup.POST("/itinerary/generate", itineraryController.GenerateItinerary)
	tourGroup.POST("/itinerary/generate/:tripId", itineraryController.GenerateForTrip)

	api.POST("/chat", chatController.Chat)
	api.GET("/photo", photoController.GetPhoto)
	api.GET("/geocode", geocodeController.Resolve)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
