package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

func createTestServer(t *testing.T, db *DB, platformID string) *entity.Server {
	t.Helper()

	server := &entity.Server{PlatformID: platformID, Name: "Guild " + platformID, IsConnected: true}
	require.NoError(t, newServerRepo(db.conn).Create(server))
	return server
}

func TestChannelRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	server := createTestServer(t, db, "900000000000000001")
	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{
		PlatformID: "800000000000000001",
		ServerID:   server.ID,
		Name:       "general",
		Kind:       domain.ChannelKindText,
	}

	require.NoError(t, repo.Create(channel))
	assert.NotZero(t, channel.ID)

	found, err := repo.GetByPlatformID("800000000000000001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, server.ID, found.ServerID)
	assert.Equal(t, "general", found.Name)
	assert.Equal(t, domain.ChannelKindText, found.Kind)
}

func TestChannelRepo_Create_duplicatePlatformID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	server := createTestServer(t, db, "900000000000000001")
	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{PlatformID: "800000000000000001", ServerID: server.ID, Name: "general", Kind: domain.ChannelKindText}
	require.NoError(t, repo.Create(channel))

	dup := &entity.Channel{PlatformID: "800000000000000001", ServerID: server.ID, Name: "other", Kind: domain.ChannelKindText}
	err := repo.Create(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrDuplicate)
}

func TestChannelRepo_GetByServer(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	server := createTestServer(t, db, "900000000000000001")
	other := createTestServer(t, db, "900000000000000002")
	repo := newChannelRepo(db.conn)

	for i, platformID := range []string{"800000000000000001", "800000000000000002"} {
		require.NoError(t, repo.Create(&entity.Channel{
			PlatformID: platformID,
			ServerID:   server.ID,
			Name:       []string{"general", "random"}[i],
			Kind:       domain.ChannelKindText,
		}))
	}
	require.NoError(t, repo.Create(&entity.Channel{
		PlatformID: "800000000000000009",
		ServerID:   other.ID,
		Name:       "elsewhere",
		Kind:       domain.ChannelKindText,
	}))

	channels, err := repo.GetByServer(server.ID)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "general", channels[0].Name)
	assert.Equal(t, "random", channels[1].Name)
}

func TestChannelRepo_UpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	server := createTestServer(t, db, "900000000000000001")
	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{PlatformID: "800000000000000001", ServerID: server.ID, Name: "general", Kind: domain.ChannelKindText}
	require.NoError(t, repo.Create(channel))

	channel.Name = "general-chat"
	channel.Kind = domain.ChannelKindAnnouncement
	require.NoError(t, repo.Update(channel))

	found, err := repo.GetByPlatformID("800000000000000001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "general-chat", found.Name)
	assert.Equal(t, domain.ChannelKindAnnouncement, found.Kind)

	require.NoError(t, repo.Delete(channel.ID))

	gone, err := repo.GetByPlatformID("800000000000000001")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
