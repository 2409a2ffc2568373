package chat_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideChatClient,
	provideChatService)

func provideChatClient() utils.ChatClientInterface {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("OPENAI_API_KEY not set, chatbot disabled")
		return nil
	}
	return utils.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"))
}

func provideChatService(client utils.ChatClientInterface, sessions mem.ChatSessionStore) services.ChatServiceInterface {
	return services.NewChatService(client, sessions)
}
