package discord

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/contract"
)

const (
	readyTimeout = 60 * time.Second
	apiTimeout   = 30 * time.Second
)

// Client maintains the bot's gateway session. Event callbacks must be
// registered before Connect; they run on discordgo's dispatch goroutines.
// Reconnect handling is delegated to discordgo.
type Client struct {
	token   string
	session *discordgo.Session

	online       atomic.Bool
	identityName string
	identityID   string

	readyCh chan struct{}

	onReady       func()
	onGuildCreate func(contract.GuildInfo)
	onGuildDelete func(string)
	onMessage     func(contract.InboundMessage)
}

func New(token string) *Client {
	return &Client{
		token:   token,
		readyCh: make(chan struct{}, 1),
	}
}

func (c *Client) OnReady(fn func())                            { c.onReady = fn }
func (c *Client) OnGuildCreate(fn func(contract.GuildInfo))    { c.onGuildCreate = fn }
func (c *Client) OnGuildDelete(fn func(string))                { c.onGuildDelete = fn }
func (c *Client) OnMessage(fn func(contract.InboundMessage))   { c.onMessage = fn }

// Connect opens the gateway session and blocks until the first Ready event.
func (c *Client) Connect() error {
	if c.token == "" {
		return contract.ErrNoToken
	}

	session, err := discordgo.New("Bot " + c.token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	// Message content is a privileged intent; without it keyword matching
	// sees empty bodies.
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	session.AddHandler(c.handleReady)
	session.AddHandler(c.handleResumed)
	session.AddHandler(c.handleDisconnect)
	session.AddHandler(c.handleGuildCreate)
	session.AddHandler(c.handleGuildDelete)
	session.AddHandler(c.handleMessageCreate)

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}
	c.session = session

	select {
	case <-c.readyCh:
	case <-time.After(readyTimeout):
		session.Close()
		c.session = nil
		return fmt.Errorf("timed out waiting for gateway ready")
	}

	return nil
}

func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	c.online.Store(false)
	return c.session.Close()
}

// SendToChannel posts text to a channel or thread; the platform addresses
// both through the same snowflake namespace.
func (c *Client) SendToChannel(platformChannelID, content string) error {
	if c.session == nil {
		return fmt.Errorf("gateway session is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	_, err := c.session.ChannelMessageSend(platformChannelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", platformChannelID, err)
	}
	return nil
}

func (c *Client) Guild(platformID string) (*contract.GuildInfo, error) {
	if c.session == nil {
		return nil, fmt.Errorf("gateway session is not connected")
	}

	// Guilds delivered over the gateway carry member counts; the REST
	// endpoint does not unless asked for approximations.
	if g, err := c.session.State.Guild(platformID); err == nil {
		return guildInfo(g), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	g, err := c.session.Guild(platformID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild %s: %w", platformID, err)
	}
	return guildInfo(g), nil
}

func (c *Client) GuildChannels(platformID string) ([]contract.ChannelInfo, error) {
	if c.session == nil {
		return nil, fmt.Errorf("gateway session is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	channels, err := c.session.GuildChannels(platformID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channels for guild %s: %w", platformID, err)
	}

	infos := make([]contract.ChannelInfo, 0, len(channels))
	for _, ch := range channels {
		infos = append(infos, channelInfo(ch))
	}
	return infos, nil
}

func (c *Client) ActiveThreads(platformID string) ([]contract.ChannelInfo, error) {
	if c.session == nil {
		return nil, fmt.Errorf("gateway session is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	list, err := c.session.GuildThreadsActive(platformID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active threads for guild %s: %w", platformID, err)
	}

	infos := make([]contract.ChannelInfo, 0, len(list.Threads))
	for _, th := range list.Threads {
		infos = append(infos, channelInfo(th))
	}
	return infos, nil
}

func (c *Client) ConnectedGuilds() []string {
	if c.session == nil {
		return nil
	}

	guilds := c.session.State.Guilds
	ids := make([]string, 0, len(guilds))
	for _, g := range guilds {
		ids = append(ids, g.ID)
	}
	return ids
}

func (c *Client) Status() contract.GatewayStatus {
	status := contract.GatewayStatus{Online: c.online.Load()}
	if !status.Online {
		return status
	}

	status.IdentityName = c.identityName
	status.IdentityID = c.identityID
	status.ServerCount = len(c.session.State.Guilds)
	return status
}

func (c *Client) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	c.identityName = r.User.Username
	c.identityID = r.User.ID
	c.online.Store(true)

	log.Printf("Gateway ready as %s (%d guilds)", r.User.Username, len(r.Guilds))

	select {
	case c.readyCh <- struct{}{}:
	default:
	}

	if c.onReady != nil {
		c.onReady()
	}
}

func (c *Client) handleResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	c.online.Store(true)
}

func (c *Client) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	c.online.Store(false)
	log.Println("Gateway disconnected, discordgo will reconnect")
}

func (c *Client) handleGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	if c.onGuildCreate == nil || g.Guild == nil {
		return
	}
	c.onGuildCreate(*guildInfo(g.Guild))
}

func (c *Client) handleGuildDelete(_ *discordgo.Session, g *discordgo.GuildDelete) {
	// Unavailable means a platform outage, not a removal from the guild.
	if c.onGuildDelete == nil || g.Guild == nil || g.Unavailable {
		return
	}
	c.onGuildDelete(g.ID)
}

func (c *Client) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if c.onMessage == nil || m.Author == nil {
		return
	}

	msg := contract.InboundMessage{
		Content:     m.Content,
		AuthorIsBot: m.Author.Bot,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
	}

	if ch := c.resolveChannel(s, m.ChannelID); ch != nil && ch.IsThread() {
		msg.ChannelIsThread = true
		msg.ParentChannelID = ch.ParentID
	}

	c.onMessage(msg)
}

func (c *Client) resolveChannel(s *discordgo.Session, channelID string) *discordgo.Channel {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	ch, err := s.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		log.Printf("Failed to resolve channel %s: %v", channelID, err)
		return nil
	}
	return ch
}

func guildInfo(g *discordgo.Guild) *contract.GuildInfo {
	memberCount := g.MemberCount
	if memberCount == 0 {
		memberCount = g.ApproximateMemberCount
	}

	return &contract.GuildInfo{
		PlatformID:  g.ID,
		Name:        g.Name,
		IconURL:     g.IconURL("256"),
		MemberCount: memberCount,
	}
}

func channelInfo(ch *discordgo.Channel) contract.ChannelInfo {
	return contract.ChannelInfo{
		PlatformID: ch.ID,
		Name:       ch.Name,
		Kind:       channelKind(ch.Type),
		IsThread:   ch.IsThread(),
		ParentID:   ch.ParentID,
	}
}

func channelKind(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return domain.ChannelKindText
	case discordgo.ChannelTypeGuildNews:
		return domain.ChannelKindAnnouncement
	default:
		return ""
	}
}
