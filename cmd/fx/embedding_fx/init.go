package embedding_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingClient,
	provideEmbeddingRepo)

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("OPENAI_API_KEY not set, preference ranking falls back to keyword match")
		return nil
	}
	return utils.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"))
}

func provideEmbeddingRepo(db *gorm.DB) repositories.PlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}
