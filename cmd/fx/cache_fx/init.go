package cache_fx

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/planner"
	"tripwise/internal/repositories"
	mem "tripwise/pkg/memcache"
)

var Module = fx.Provide(
	provideRedis,
	provideDraftStore,
	provideChatSessions)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

// provideDraftStore picks the draft backend: redis when configured,
// the in-memory TTL map otherwise. Both share the same merge contract.
func provideDraftStore(rdb *redis.Client) planner.DraftStore {
	if rdb == nil {
		return mem.NewDraftStore()
	}
	return repositories.NewRedisDraftStore(rdb, 7*24*time.Hour)
}

func provideChatSessions() mem.ChatSessionStore {
	return mem.NewChatSessions(30*time.Minute, 20)
}
