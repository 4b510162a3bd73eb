package database

import (
	"context"
	"fmt"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	serverRepo       contract.ServerRepo
	channelRepo      contract.ChannelRepo
	notificationRepo contract.NotificationRepo
	forwarderRepo    contract.ForwarderRepo
	settingsRepo     contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.repoInstances()
	return i
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.serverRepo = newServerRepo(i.db.conn)
	i.channelRepo = newChannelRepo(i.db.conn)
	i.notificationRepo = newNotificationRepo(i.db.conn)
	i.forwarderRepo = newForwarderRepo(i.db.conn)
	i.settingsRepo = newSettingsRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		serverRepo:       newServerRepo(db),
		channelRepo:      newChannelRepo(db),
		notificationRepo: newNotificationRepo(db),
		forwarderRepo:    newForwarderRepo(db),
		settingsRepo:     newSettingsRepo(db),
	}
}

func (i *instance) Server() contract.ServerRepo {
	return i.serverRepo
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) Notification() contract.NotificationRepo {
	return i.notificationRepo
}

func (i *instance) Forwarder() contract.ForwarderRepo {
	return i.forwarderRepo
}

func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
