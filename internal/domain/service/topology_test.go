package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

func testGuild() *contract.GuildInfo {
	return &contract.GuildInfo{
		PlatformID:  "guild-1",
		Name:        "Test Guild",
		IconURL:     "https://cdn.example/icons/guild-1.png",
		MemberCount: 42,
	}
}

func testGuildChannels() []contract.ChannelInfo {
	return []contract.ChannelInfo{
		{PlatformID: "chan-1", Name: "general", Kind: domain.ChannelKindText},
		{PlatformID: "chan-2", Name: "announcements", Kind: domain.ChannelKindAnnouncement},
		{PlatformID: "chan-3", Name: "voice-lounge", Kind: ""}, // not text-like
	}
}

func Test_topology_SyncServer_createsServerAndChannels(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockGateway.EXPECT().Guild("guild-1").Return(testGuild(), nil)
	m.mockServerRepo.EXPECT().GetByPlatformID("guild-1").Return(nil, nil)
	m.mockServerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(server *entity.Server) error {
		assert.Equal(t, "guild-1", server.PlatformID)
		assert.Equal(t, "Test Guild", server.Name)
		assert.Equal(t, 42, server.MemberCount)
		assert.True(t, server.IsConnected)
		server.ID = 10
		return nil
	})

	m.mockGateway.EXPECT().GuildChannels("guild-1").Return(testGuildChannels(), nil)
	m.mockChannelRepo.EXPECT().GetByServer(int64(10)).Return(nil, nil)
	m.mockChannelRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(channel *entity.Channel) error {
		assert.Equal(t, "chan-1", channel.PlatformID)
		assert.Equal(t, int64(10), channel.ServerID)
		assert.Equal(t, domain.ChannelKindText, channel.Kind)
		return nil
	})
	m.mockChannelRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(channel *entity.Channel) error {
		assert.Equal(t, "chan-2", channel.PlatformID)
		assert.Equal(t, domain.ChannelKindAnnouncement, channel.Kind)
		return nil
	})

	s := newTopology(m.mockDataManager, m.mockGateway)
	require.NoError(t, s.SyncServer("guild-1"))
}

func Test_topology_SyncServer_isIdempotentOnUnchangedGuild(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	existingServer := &entity.Server{
		ID:          10,
		PlatformID:  "guild-1",
		Name:        "Test Guild",
		IconURL:     "https://cdn.example/icons/guild-1.png",
		MemberCount: 42,
		IsConnected: true,
	}
	existingChannels := []*entity.Channel{
		{ID: 1, PlatformID: "chan-1", ServerID: 10, Name: "general", Kind: domain.ChannelKindText},
		{ID: 2, PlatformID: "chan-2", ServerID: 10, Name: "announcements", Kind: domain.ChannelKindAnnouncement},
	}

	m.mockGateway.EXPECT().Guild("guild-1").Return(testGuild(), nil)
	m.mockServerRepo.EXPECT().GetByPlatformID("guild-1").Return(existingServer, nil)
	// server row refresh only; no channel create/update/delete
	m.mockServerRepo.EXPECT().Update(existingServer).Return(nil)
	m.mockGateway.EXPECT().GuildChannels("guild-1").Return(testGuildChannels(), nil)
	m.mockChannelRepo.EXPECT().GetByServer(int64(10)).Return(existingChannels, nil)

	s := newTopology(m.mockDataManager, m.mockGateway)
	require.NoError(t, s.SyncServer("guild-1"))
}

func Test_topology_SyncServer_renamesAndDeletesChannels(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	existingServer := &entity.Server{ID: 10, PlatformID: "guild-1", IsConnected: true}
	existingChannels := []*entity.Channel{
		{ID: 1, PlatformID: "chan-1", ServerID: 10, Name: "old-name", Kind: domain.ChannelKindText},
		{ID: 9, PlatformID: "chan-gone", ServerID: 10, Name: "retired", Kind: domain.ChannelKindText},
	}

	m.mockGateway.EXPECT().Guild("guild-1").Return(testGuild(), nil)
	m.mockServerRepo.EXPECT().GetByPlatformID("guild-1").Return(existingServer, nil)
	m.mockServerRepo.EXPECT().Update(existingServer).Return(nil)
	m.mockGateway.EXPECT().GuildChannels("guild-1").Return([]contract.ChannelInfo{
		{PlatformID: "chan-1", Name: "general", Kind: domain.ChannelKindText},
	}, nil)
	m.mockChannelRepo.EXPECT().GetByServer(int64(10)).Return(existingChannels, nil)
	m.mockChannelRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(channel *entity.Channel) error {
		assert.Equal(t, int64(1), channel.ID)
		assert.Equal(t, "general", channel.Name)
		return nil
	})
	m.mockChannelRepo.EXPECT().Delete(int64(9)).Return(nil)

	s := newTopology(m.mockDataManager, m.mockGateway)
	require.NoError(t, s.SyncServer("guild-1"))
}

func Test_topology_SyncServer_guildFetchErrorPropagates(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockGateway.EXPECT().Guild("guild-1").Return(nil, fmt.Errorf("missing access"))

	s := newTopology(m.mockDataManager, m.mockGateway)
	assert.Error(t, s.SyncServer("guild-1"))
}

func Test_topology_SyncAll_continuesPastFailures(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockGateway.EXPECT().ConnectedGuilds().Return([]string{"guild-bad", "guild-1"})
	m.mockGateway.EXPECT().Guild("guild-bad").Return(nil, fmt.Errorf("missing access"))

	m.mockGateway.EXPECT().Guild("guild-1").Return(testGuild(), nil)
	existingServer := &entity.Server{ID: 10, PlatformID: "guild-1", IsConnected: true}
	m.mockServerRepo.EXPECT().GetByPlatformID("guild-1").Return(existingServer, nil)
	m.mockServerRepo.EXPECT().Update(existingServer).Return(nil)
	m.mockGateway.EXPECT().GuildChannels("guild-1").Return(nil, nil)
	m.mockChannelRepo.EXPECT().GetByServer(int64(10)).Return(nil, nil)

	s := newTopology(m.mockDataManager, m.mockGateway)
	s.SyncAll()
}

func Test_topology_HandleGuildRemoved(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	server := &entity.Server{ID: 10, PlatformID: "guild-1", Name: "Test Guild", IsConnected: true}
	m.mockServerRepo.EXPECT().GetByPlatformID("guild-1").Return(server, nil)
	m.mockServerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *entity.Server) error {
		assert.False(t, s.IsConnected)
		return nil
	})

	s := newTopology(m.mockDataManager, m.mockGateway)
	s.HandleGuildRemoved("guild-1")
}

func Test_topology_HandleGuildRemoved_unknownGuildIsNoop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockServerRepo.EXPECT().GetByPlatformID("guild-x").Return(nil, nil)

	s := newTopology(m.mockDataManager, m.mockGateway)
	s.HandleGuildRemoved("guild-x")
}
