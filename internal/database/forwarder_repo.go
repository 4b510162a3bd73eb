package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type forwarderRepo struct {
	db dbConn
}

func newForwarderRepo(db dbConn) contract.ForwarderRepo {
	return &forwarderRepo{db: db}
}

func (r *forwarderRepo) GetActive() ([]*entity.ActiveForwarder, error) {
	query := `
		SELECT f.id, f.user_id, f.name, f.source_server_id, f.source_channel_id,
			f.source_thread_id, f.destination_server_id, f.destination_channel_id,
			f.destination_thread_id, f.keywords, f.match_type, f.is_active,
			f.created_at, f.updated_at,
			sc.platform_id, dc.platform_id
		FROM forwarders f
		JOIN channels sc ON sc.id = f.source_channel_id
		JOIN channels dc ON dc.id = f.destination_channel_id
		WHERE f.is_active = 1
		ORDER BY f.id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active forwarders: %w", err)
	}
	defer rows.Close()

	var forwarders []*entity.ActiveForwarder
	for rows.Next() {
		f := &entity.ActiveForwarder{}
		var keywordsJSON string
		err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.Name,
			&f.SourceServerID,
			&f.SourceChannelID,
			&f.SourceThreadID,
			&f.DestinationServerID,
			&f.DestinationChannelID,
			&f.DestinationThreadID,
			&keywordsJSON,
			&f.MatchType,
			&f.IsActive,
			&f.CreatedAt,
			&f.UpdatedAt,
			&f.SourceChannelPlatformID,
			&f.DestinationChannelPlatformID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan forwarder: %w", err)
		}

		if err := json.Unmarshal([]byte(keywordsJSON), &f.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}

		forwarders = append(forwarders, f)
	}

	return forwarders, rows.Err()
}

func (r *forwarderRepo) CreateLog(row *entity.ForwarderLog) error {
	query := `
		INSERT INTO forwarder_logs (forwarder_id, forwarded_at, original_message,
			matched_keyword, status, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		row.ForwarderID,
		row.ForwardedAt.UTC(),
		row.OriginalMessage,
		row.MatchedKeyword,
		row.Status,
		row.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to create forwarder log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	row.ID = id
	return nil
}

func (r *forwarderRepo) DeleteLogsBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM forwarder_logs WHERE forwarded_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete forwarder logs: %w", err)
	}

	return result.RowsAffected()
}
