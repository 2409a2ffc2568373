package db_models

import "github.com/pgvector/pgvector-go"

// PlaceEmbedding caches the embedding vector of one catalog place so the
// preference-places endpoint can rank a destination's catalog against
// the user's interest tags without re-embedding on every request.
type PlaceEmbedding struct {
	BaseModel
	PlaceKey    string          `gorm:"size:128;uniqueIndex;not null"`
	Destination string          `gorm:"size:255;index"`
	DisplayName string          `gorm:"size:255"`
	Category    string          `gorm:"size:32"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}
