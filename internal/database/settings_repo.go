package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get() (*entity.BotSettings, error) {
	settings := &entity.BotSettings{}
	query := `
		SELECT default_timezone, max_messages_per_minute, enable_analytics,
			auto_cleanup_days, working_days
		FROM bot_settings
		WHERE id = 1
	`

	var workingDaysJSON string
	err := r.db.QueryRow(query).Scan(
		&settings.DefaultTimezone,
		&settings.MaxMessagesPerMinute,
		&settings.EnableAnalytics,
		&settings.AutoCleanupDays,
		&workingDaysJSON,
	)
	if err == sql.ErrNoRows {
		// Settings row is seeded by migration; tolerate a missing row anyway.
		settings.DefaultTimezone = "UTC"
		settings.WorkingDays = domain.DefaultWorkingDays
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bot settings: %w", err)
	}

	if err := json.Unmarshal([]byte(workingDaysJSON), &settings.WorkingDays); err != nil {
		return nil, fmt.Errorf("failed to unmarshal working days: %w", err)
	}

	return settings, nil
}
