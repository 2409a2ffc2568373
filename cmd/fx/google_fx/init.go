package google_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripwise/internal/infra"
)

var Module = fx.Provide(
	provideGeocodeClient,
	providePlacesClient,
	provideMediaClient)

// Missing GOOGLE_MAPS_API_KEY yields nil clients; the services answer
// 503 for the features that need them instead of crashing at startup.
func provideGeocodeClient() infra.GeocodeClientInterface {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, geocoding disabled")
		return nil
	}
	return infra.NewGeocodeClient("", key, 0)
}

func providePlacesClient() infra.PlacesClientInterface {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, place search disabled")
		return nil
	}
	return infra.NewPlacesClient("", key, 0)
}

func provideMediaClient() infra.MediaClientInterface {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, photo proxy disabled")
		return nil
	}
	return infra.NewMediaClient("", key, 0)
}
