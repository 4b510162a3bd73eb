package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

func TestServerRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newServerRepo(db.conn)

	server := &entity.Server{
		PlatformID:  "900000000000000001",
		Name:        "Test Guild",
		IconURL:     "https://cdn.example/icon.png",
		MemberCount: 42,
		IsConnected: true,
	}

	err := repo.Create(server)
	require.NoError(t, err)
	assert.NotZero(t, server.ID)

	found, err := repo.GetByPlatformID("900000000000000001")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, server.ID, found.ID)
	assert.Equal(t, "Test Guild", found.Name)
	assert.Equal(t, "https://cdn.example/icon.png", found.IconURL)
	assert.Equal(t, 42, found.MemberCount)
	assert.True(t, found.IsConnected)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestServerRepo_GetByPlatformID_notFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newServerRepo(db.conn)

	found, err := repo.GetByPlatformID("missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestServerRepo_Create_duplicatePlatformID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newServerRepo(db.conn)

	first := &entity.Server{PlatformID: "900000000000000001", Name: "Guild", IsConnected: true}
	require.NoError(t, repo.Create(first))

	dup := &entity.Server{PlatformID: "900000000000000001", Name: "Other", IsConnected: true}
	err := repo.Create(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrDuplicate)
}

func TestServerRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newServerRepo(db.conn)

	server := &entity.Server{PlatformID: "900000000000000001", Name: "Guild", IsConnected: true}
	require.NoError(t, repo.Create(server))

	server.Name = "Renamed Guild"
	server.MemberCount = 100
	server.IsConnected = false
	require.NoError(t, repo.Update(server))

	found, err := repo.GetByPlatformID("900000000000000001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renamed Guild", found.Name)
	assert.Equal(t, 100, found.MemberCount)
	assert.False(t, found.IsConnected)
}
