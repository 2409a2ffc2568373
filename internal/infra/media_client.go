package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// MediaClientInterface fetches place photo bytes server-side so the
// maps API credential never reaches the browser.
type MediaClientInterface interface {
	FetchPhoto(ctx context.Context, photoName string, maxWidthPx int) (data []byte, contentType string, err error)
}

type MediaClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewMediaClient(base, key string, rps int) *MediaClient {
	if base == "" {
		base = "https://places.googleapis.com/v1"
	}
	if rps <= 0 {
		rps = 10
	}
	return &MediaClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *MediaClient) FetchPhoto(ctx context.Context, photoName string, maxWidthPx int) ([]byte, string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, "", err
	}
	if maxWidthPx <= 0 {
		maxWidthPx = 600
	}

	u := fmt.Sprintf("%s/%s/media?key=%s&maxWidthPx=%d", c.base, photoName, c.key, maxWidthPx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}
