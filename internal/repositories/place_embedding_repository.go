package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripwise/internal/models/db_models"
)

type PlaceEmbeddingRepository interface {
	UpsertEmbedding(ctx context.Context, embedding *db_models.PlaceEmbedding) error
	RankByVector(ctx context.Context, destination string, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error)
}

type placeEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) PlaceEmbeddingRepository {
	return &placeEmbeddingRepository{db: db}
}

func (r *placeEmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "category", "embedding", "updated_at"}),
		}).
		Create(embedding).Error
}

// RankByVector orders a destination's cached places by cosine distance
// to the query vector, nearest first.
func (r *placeEmbeddingRepository) RankByVector(
	ctx context.Context,
	destination string,
	vector pgvector.Vector,
	limit int,
) ([]db_models.PlaceEmbedding, error) {

	if limit <= 0 {
		limit = 15
	}

	var results []db_models.PlaceEmbedding
	query := `
        SELECT *
        FROM place_embeddings
        WHERE destination = ?
        ORDER BY embedding <=> ?
        LIMIT ?
    `
	err := r.db.WithContext(ctx).Raw(query, destination, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
