package places_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	providePlacesService)

func providePlacesService(
	geocode infra.GeocodeClientInterface,
	places infra.PlacesClientInterface,
	rdb *redis.Client,
	embedder utils.EmbeddingClientInterface,
	embeddings repositories.PlaceEmbeddingRepository,
	trips repositories.TripRepository,
) services.PlacesServiceInterface {
	return services.NewPlacesService(geocode, places, rdb, embedder, embeddings, trips)
}
