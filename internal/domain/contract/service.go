package contract

import "github.com/zunnuran/discord-bot/internal/domain/entity"

// BotRuntime is the surface the API layer consumes
type BotRuntime interface {
	Status() entity.BotStatus
	ReloadForwarders()
}

// TopologySync mirrors the platform guild/channel graph into the store
type TopologySync interface {
	SyncAll()
	SyncServer(guildPlatformID string) error
	HandleGuildRemoved(guildPlatformID string)
}

// ForwarderEngine owns the in-memory rule cache and message evaluation
type ForwarderEngine interface {
	Load() error
	HandleMessage(msg InboundMessage)
}
