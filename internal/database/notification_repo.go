package database

import (
	"fmt"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type notificationRepo struct {
	db dbConn
}

func newNotificationRepo(db dbConn) contract.NotificationRepo {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) GetDue(now time.Time) ([]*entity.DueNotification, error) {
	// The channel join is LEFT so a row whose channel was deleted still
	// surfaces; the scheduler turns the empty platform ID into a failed log.
	query := `
		SELECT n.id, n.user_id, n.server_id, n.channel_id, n.title, n.message,
			n.schedule_date, n.repeat_type, n.end_date, n.is_active, n.timezone,
			n.mentions_everyone, n.created_at, n.updated_at, n.last_sent, n.next_scheduled,
			COALESCE(s.platform_id, ''), COALESCE(c.platform_id, ''), COALESCE(c.name, '')
		FROM notifications n
		LEFT JOIN servers s ON s.id = n.server_id
		LEFT JOIN channels c ON c.id = n.channel_id
		WHERE n.is_active = 1
			AND n.next_scheduled IS NOT NULL
			AND n.next_scheduled <= ?
		ORDER BY n.next_scheduled, n.id
	`

	rows, err := r.db.Query(query, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	var due []*entity.DueNotification
	for rows.Next() {
		n := &entity.DueNotification{}
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.ServerID,
			&n.ChannelID,
			&n.Title,
			&n.Message,
			&n.ScheduleDate,
			&n.RepeatType,
			&n.EndDate,
			&n.IsActive,
			&n.Timezone,
			&n.MentionsEveryone,
			&n.CreatedAt,
			&n.UpdatedAt,
			&n.LastSent,
			&n.NextScheduled,
			&n.ServerPlatformID,
			&n.ChannelPlatformID,
			&n.ChannelName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due notification: %w", err)
		}
		due = append(due, n)
	}

	return due, rows.Err()
}

func (r *notificationRepo) UpdateSchedule(id int64, lastSent *time.Time, nextScheduled *time.Time, isActive bool) error {
	query := `
		UPDATE notifications SET
			last_sent = COALESCE(?, last_sent),
			next_scheduled = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	var lastSentArg, nextArg interface{}
	if lastSent != nil {
		lastSentArg = lastSent.UTC()
	}
	if nextScheduled != nil {
		nextArg = nextScheduled.UTC()
	}

	_, err := r.db.Exec(query, lastSentArg, nextArg, isActive, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update notification schedule: %w", err)
	}

	return nil
}

func (r *notificationRepo) CreateLog(row *entity.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (notification_id, sent_at, status, error)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		row.NotificationID,
		row.SentAt.UTC(),
		row.Status,
		row.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	row.ID = id
	return nil
}

func (r *notificationRepo) DeleteLogsBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM notification_logs WHERE sent_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete notification logs: %w", err)
	}

	return result.RowsAffected()
}
