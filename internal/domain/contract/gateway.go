package contract

import "errors"

// ErrNoToken is returned by Gateway.Connect when no bot token is configured.
// The runtime treats it as "stay inert", not as a fatal error.
var ErrNoToken = errors.New("bot token not configured")

// GuildInfo is the slice of a platform guild the topology sync needs
type GuildInfo struct {
	PlatformID  string
	Name        string
	IconURL     string
	MemberCount int
}

// ChannelInfo describes a guild channel or thread. Kind is empty for channel
// types the bot does not mirror.
type ChannelInfo struct {
	PlatformID string
	Name       string
	Kind       string
	IsThread   bool
	ParentID   string
}

// InboundMessage is a guild message as seen by the forwarder pipeline.
// GuildID is empty for direct messages.
type InboundMessage struct {
	Content         string
	AuthorIsBot     bool
	GuildID         string
	ChannelID       string
	ChannelIsThread bool
	ParentChannelID string
}

// GatewayStatus is the live session state
type GatewayStatus struct {
	Online       bool
	IdentityName string
	IdentityID   string
	ServerCount  int
}

// Gateway defines the platform session the runtime drives. Event callbacks
// must be registered before Connect; they are invoked on the platform
// library's dispatch goroutines.
type Gateway interface {
	// Connect opens the session and blocks until it is ready. Returns
	// ErrNoToken when no token is configured.
	Connect() error
	Close() error

	// SendToChannel posts text to a channel or thread by platform ID.
	SendToChannel(platformChannelID, content string) error

	Guild(platformID string) (*GuildInfo, error)
	GuildChannels(platformID string) ([]ChannelInfo, error)
	ActiveThreads(platformID string) ([]ChannelInfo, error)

	// ConnectedGuilds returns the platform IDs of guilds the session sees.
	ConnectedGuilds() []string

	Status() GatewayStatus

	OnReady(fn func())
	OnGuildCreate(fn func(guild GuildInfo))
	OnGuildDelete(fn func(platformID string))
	OnMessage(fn func(msg InboundMessage))
}
