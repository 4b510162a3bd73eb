package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type serverRepo struct {
	db dbConn
}

func newServerRepo(db dbConn) contract.ServerRepo {
	return &serverRepo{db: db}
}

func (r *serverRepo) Create(server *entity.Server) error {
	query := `
		INSERT INTO servers (platform_id, name, icon_url, member_count, is_connected)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		server.PlatformID,
		server.Name,
		server.IconURL,
		server.MemberCount,
		server.IsConnected,
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", mapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	server.ID = id
	return nil
}

func (r *serverRepo) GetByPlatformID(platformID string) (*entity.Server, error) {
	server := &entity.Server{}
	query := `
		SELECT id, platform_id, name, icon_url, member_count, is_connected,
			created_at, updated_at
		FROM servers
		WHERE platform_id = ?
	`

	err := r.db.QueryRow(query, platformID).Scan(
		&server.ID,
		&server.PlatformID,
		&server.Name,
		&server.IconURL,
		&server.MemberCount,
		&server.IsConnected,
		&server.CreatedAt,
		&server.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return server, nil
}

func (r *serverRepo) Update(server *entity.Server) error {
	query := `
		UPDATE servers SET
			name = ?,
			icon_url = ?,
			member_count = ?,
			is_connected = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		server.Name,
		server.IconURL,
		server.MemberCount,
		server.IsConnected,
		time.Now().UTC(),
		server.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update server: %w", err)
	}

	return nil
}
