package itinerary_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryClient,
	provideItineraryService)

func provideItineraryClient() utils.ItineraryClientInterface {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Println("GEMINI_API_KEY not set, itinerary generation disabled")
		return nil
	}
	client, err := utils.NewGeminiItineraryClient(context.Background(), key, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Failed to create Gemini client: %v", err)
		return nil
	}
	return client
}

func provideItineraryService(
	client utils.ItineraryClientInterface,
	places services.PlacesServiceInterface,
	tripRepo repositories.TripRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, places, tripRepo)
}
