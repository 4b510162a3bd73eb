package service

import (
	"fmt"
	"log"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

// topologyService mirrors the platform guild/channel graph into the store.
// Server and channel rows are owned exclusively by this service.
type topologyService struct {
	dm      contract.DataManager
	gateway contract.Gateway
}

func newTopology(dm contract.DataManager, gateway contract.Gateway) *topologyService {
	return &topologyService{
		dm:      dm,
		gateway: gateway,
	}
}

// SyncAll reconciles every guild the session currently sees. Per-guild
// failures are logged and do not stop the sweep.
func (s *topologyService) SyncAll() {
	guilds := s.gateway.ConnectedGuilds()
	log.Printf("Syncing topology for %d guilds", len(guilds))

	for _, guildID := range guilds {
		if err := s.SyncServer(guildID); err != nil {
			log.Printf("Failed to sync guild %s: %v", guildID, err)
		}
	}
}

// SyncServer upserts the server row for one guild and reconciles its channels.
func (s *topologyService) SyncServer(guildPlatformID string) error {
	guild, err := s.gateway.Guild(guildPlatformID)
	if err != nil {
		return fmt.Errorf("failed to resolve guild: %w", err)
	}

	server, err := s.dm.Server().GetByPlatformID(guild.PlatformID)
	if err != nil {
		return fmt.Errorf("failed to look up server: %w", err)
	}

	if server == nil {
		server = &entity.Server{
			PlatformID:  guild.PlatformID,
			Name:        guild.Name,
			IconURL:     guild.IconURL,
			MemberCount: guild.MemberCount,
			IsConnected: true,
		}
		if err := s.dm.Server().Create(server); err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
	} else {
		server.Name = guild.Name
		server.IconURL = guild.IconURL
		server.MemberCount = guild.MemberCount
		server.IsConnected = true
		if err := s.dm.Server().Update(server); err != nil {
			return fmt.Errorf("failed to update server: %w", err)
		}
	}

	return s.syncChannels(guild.PlatformID, server.ID)
}

// syncChannels upserts the guild's text-like channels and deletes local rows
// whose platform channel no longer exists.
func (s *topologyService) syncChannels(guildPlatformID string, serverID int64) error {
	platformChannels, err := s.gateway.GuildChannels(guildPlatformID)
	if err != nil {
		return fmt.Errorf("failed to fetch channels: %w", err)
	}

	existing, err := s.dm.Channel().GetByServer(serverID)
	if err != nil {
		return fmt.Errorf("failed to list local channels: %w", err)
	}

	existingByPlatformID := make(map[string]*entity.Channel, len(existing))
	for _, ch := range existing {
		existingByPlatformID[ch.PlatformID] = ch
	}

	surviving := make(map[string]bool, len(platformChannels))
	for _, pc := range platformChannels {
		if pc.Kind == "" || pc.IsThread {
			continue
		}
		surviving[pc.PlatformID] = true

		local, ok := existingByPlatformID[pc.PlatformID]
		if !ok {
			channel := &entity.Channel{
				PlatformID: pc.PlatformID,
				ServerID:   serverID,
				Name:       pc.Name,
				Kind:       pc.Kind,
			}
			if err := s.dm.Channel().Create(channel); err != nil {
				log.Printf("Failed to create channel %s: %v", pc.PlatformID, err)
			}
			continue
		}

		if local.Name != pc.Name || local.Kind != pc.Kind {
			local.Name = pc.Name
			local.Kind = pc.Kind
			if err := s.dm.Channel().Update(local); err != nil {
				log.Printf("Failed to update channel %s: %v", pc.PlatformID, err)
			}
		}
	}

	for _, ch := range existing {
		if !surviving[ch.PlatformID] {
			if err := s.dm.Channel().Delete(ch.ID); err != nil {
				log.Printf("Failed to delete channel %s: %v", ch.PlatformID, err)
			}
		}
	}

	return nil
}

// HandleGuildRemoved marks the server disconnected. Channels are kept so
// history and log rows stay resolvable.
func (s *topologyService) HandleGuildRemoved(guildPlatformID string) {
	server, err := s.dm.Server().GetByPlatformID(guildPlatformID)
	if err != nil {
		log.Printf("Failed to look up removed guild %s: %v", guildPlatformID, err)
		return
	}
	if server == nil {
		return
	}

	server.IsConnected = false
	if err := s.dm.Server().Update(server); err != nil {
		log.Printf("Failed to mark server %s disconnected: %v", guildPlatformID, err)
	}

	log.Printf("Bot removed from guild %s (%s)", server.Name, guildPlatformID)
}
