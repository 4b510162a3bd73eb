package database

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type forwarderFixture struct {
	server        *entity.Server
	sourceChannel *entity.Channel
	destChannel   *entity.Channel
}

func setupForwarderFixture(t *testing.T, db *DB) forwarderFixture {
	t.Helper()

	server := createTestServer(t, db, "900000000000000001")
	channelRepo := newChannelRepo(db.conn)

	source := &entity.Channel{PlatformID: "800000000000000001", ServerID: server.ID, Name: "source", Kind: domain.ChannelKindText}
	require.NoError(t, channelRepo.Create(source))

	dest := &entity.Channel{PlatformID: "800000000000000002", ServerID: server.ID, Name: "dest", Kind: domain.ChannelKindText}
	require.NoError(t, channelRepo.Create(dest))

	return forwarderFixture{server: server, sourceChannel: source, destChannel: dest}
}

func insertTestForwarder(t *testing.T, db *DB, fx forwarderFixture, keywords []string, matchType string, isActive bool) int64 {
	t.Helper()

	keywordsJSON, err := json.Marshal(keywords)
	require.NoError(t, err)

	result, err := db.conn.Exec(`
		INSERT INTO forwarders (user_id, name, source_server_id, source_channel_id,
			source_thread_id, destination_server_id, destination_channel_id,
			destination_thread_id, keywords, match_type, is_active)
		VALUES (?, ?, ?, ?, '', ?, ?, '', ?, ?, ?)
	`, 1, "rule", fx.server.ID, fx.sourceChannel.ID, fx.server.ID, fx.destChannel.ID,
		string(keywordsJSON), matchType, isActive)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestForwarderRepo_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	fx := setupForwarderFixture(t, db)
	activeID := insertTestForwarder(t, db, fx, []string{"urgent", "alert"}, domain.MatchContains, true)
	insertTestForwarder(t, db, fx, []string{"ignored"}, domain.MatchExact, false)

	repo := newForwarderRepo(db.conn)

	active, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, active, 1)

	f := active[0]
	assert.Equal(t, activeID, f.ID)
	assert.Equal(t, []string{"urgent", "alert"}, f.Keywords)
	assert.Equal(t, domain.MatchContains, f.MatchType)
	assert.Equal(t, "800000000000000001", f.SourceChannelPlatformID)
	assert.Equal(t, "800000000000000002", f.DestinationChannelPlatformID)
}

func TestForwarderRepo_GetActive_dropsRulesWithDeletedSource(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	fx := setupForwarderFixture(t, db)
	insertTestForwarder(t, db, fx, []string{"urgent"}, domain.MatchContains, true)

	require.NoError(t, newChannelRepo(db.conn).Delete(fx.sourceChannel.ID))

	repo := newForwarderRepo(db.conn)

	active, err := repo.GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestForwarderRepo_CreateLogAndCleanup(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	fx := setupForwarderFixture(t, db)
	forwarderID := insertTestForwarder(t, db, fx, []string{"urgent"}, domain.MatchContains, true)

	repo := newForwarderRepo(db.conn)

	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	oldLog := &entity.ForwarderLog{
		ForwarderID:     forwarderID,
		ForwardedAt:     now.AddDate(0, 0, -40),
		OriginalMessage: "old message",
		MatchedKeyword:  "urgent",
		Status:          domain.StatusSuccess,
	}
	require.NoError(t, repo.CreateLog(oldLog))
	assert.NotZero(t, oldLog.ID)

	recent := &entity.ForwarderLog{
		ForwarderID:     forwarderID,
		ForwardedAt:     now,
		OriginalMessage: "fresh message",
		Status:          domain.StatusFailed,
		Error:           "missing access",
	}
	require.NoError(t, repo.CreateLog(recent))

	removed, err := repo.DeleteLogsBefore(now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining int
	err = db.conn.QueryRow(`SELECT COUNT(*) FROM forwarder_logs`).Scan(&remaining)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
