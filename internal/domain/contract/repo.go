package contract

import (
	"context"
	"errors"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Server() ServerRepo
	Channel() ChannelRepo
	Notification() NotificationRepo
	Forwarder() ForwarderRepo
	Settings() SettingsRepo
}

// ServerRepo defines the contract for server rows. Not-found reads return
// (nil, nil).
type ServerRepo interface {
	Create(server *entity.Server) error
	GetByPlatformID(platformID string) (*entity.Server, error)
	Update(server *entity.Server) error
}

// ChannelRepo defines the contract for channel rows
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetByPlatformID(platformID string) (*entity.Channel, error)
	GetByServer(serverID int64) ([]*entity.Channel, error)
	Update(channel *entity.Channel) error
	Delete(id int64) error
}

// NotificationRepo defines the persistence surface the scheduler consumes.
// The runtime never touches user-supplied notification fields.
type NotificationRepo interface {
	// GetDue returns active rows with next_scheduled <= now, joined with
	// server and channel platform IDs.
	GetDue(now time.Time) ([]*entity.DueNotification, error)

	// UpdateSchedule patches the scheduler-owned fields of one row. A nil
	// nextScheduled stores NULL.
	UpdateSchedule(id int64, lastSent *time.Time, nextScheduled *time.Time, isActive bool) error

	CreateLog(row *entity.NotificationLog) error
	DeleteLogsBefore(cutoff time.Time) (int64, error)
}

// ForwarderRepo defines the persistence surface the forwarder cache consumes
type ForwarderRepo interface {
	// GetActive returns active rules joined with source and destination
	// channel platform IDs.
	GetActive() ([]*entity.ActiveForwarder, error)

	CreateLog(row *entity.ForwarderLog) error
	DeleteLogsBefore(cutoff time.Time) (int64, error)
}

// SettingsRepo reads the singleton settings row
type SettingsRepo interface {
	Get() (*entity.BotSettings, error)
}
