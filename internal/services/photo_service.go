package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tripwise/internal/infra"
	"tripwise/pkg/utils"
)

type PhotoServiceInterface interface {
	GetPhoto(ctx context.Context, photoName string, maxWidthPx int) (data []byte, contentType string, err error)
}

const (
	photoCacheTTL    = 24 * time.Hour
	photoCachePrefix = "photo:"
)

// PhotoService proxies place photos through the backend so the maps API
// key stays server-side. Fetched bytes are cached for a day; photo media
// is immutable per photo name.
type PhotoService struct {
	media infra.MediaClientInterface
	rdb   *redis.Client
}

func NewPhotoService(media infra.MediaClientInterface, rdb *redis.Client) PhotoServiceInterface {
	return &PhotoService{media: media, rdb: rdb}
}

type cachedPhoto struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

func (s *PhotoService) GetPhoto(ctx context.Context, photoName string, maxWidthPx int) ([]byte, string, error) {
	if photoName == "" {
		return nil, "", utils.ErrInvalidInput
	}
	if s.media == nil {
		return nil, "", utils.ErrMissingConfig
	}

	key := fmt.Sprintf("%s%s:%d", photoCachePrefix, photoName, maxWidthPx)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached cachedPhoto
			if json.Unmarshal(raw, &cached) == nil && len(cached.Data) > 0 {
				return cached.Data, cached.ContentType, nil
			}
		}
	}

	data, contentType, err := s.media.FetchPhoto(ctx, photoName, maxWidthPx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: photo %s: %v", utils.ErrUpstreamError, photoName, err)
	}

	if s.rdb != nil {
		raw, err := json.Marshal(cachedPhoto{ContentType: contentType, Data: data})
		if err == nil {
			if err := s.rdb.Set(ctx, key, raw, photoCacheTTL).Err(); err != nil {
				log.Printf("photo cache write failed: %v", err)
			}
		}
	}
	return data, contentType, nil
}
