package photo_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	providePhotoService)

func providePhotoService(media infra.MediaClientInterface, rdb *redis.Client) services.PhotoServiceInterface {
	return services.NewPhotoService(media, rdb)
}
