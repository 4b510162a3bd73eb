package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (platform_id, server_id, name, kind)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		channel.PlatformID,
		channel.ServerID,
		channel.Name,
		channel.Kind,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", mapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepo) GetByPlatformID(platformID string) (*entity.Channel, error) {
	channel := &entity.Channel{}
	query := `
		SELECT id, platform_id, server_id, name, kind, created_at, updated_at
		FROM channels
		WHERE platform_id = ?
	`

	err := r.db.QueryRow(query, platformID).Scan(
		&channel.ID,
		&channel.PlatformID,
		&channel.ServerID,
		&channel.Name,
		&channel.Kind,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}

func (r *channelRepo) GetByServer(serverID int64) ([]*entity.Channel, error) {
	query := `
		SELECT id, platform_id, server_id, name, kind, created_at, updated_at
		FROM channels
		WHERE server_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		channel := &entity.Channel{}
		err := rows.Scan(
			&channel.ID,
			&channel.PlatformID,
			&channel.ServerID,
			&channel.Name,
			&channel.Kind,
			&channel.CreatedAt,
			&channel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, channel)
	}

	return channels, rows.Err()
}

func (r *channelRepo) Update(channel *entity.Channel) error {
	query := `
		UPDATE channels SET
			name = ?,
			kind = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		channel.Name,
		channel.Kind,
		time.Now().UTC(),
		channel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

func (r *channelRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM channels WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}
