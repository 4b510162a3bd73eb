package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

// Runtime supervises the gateway session, topology sync, forwarder cache and
// notification scheduler as one lifecycle. No component error may crash it.
type Runtime struct {
	gateway    contract.Gateway
	topology   contract.TopologySync
	forwarders contract.ForwarderEngine
	scheduler  *notificationScheduler
	cleanup    *cleanupService

	mu         sync.Mutex
	started    bool
	readyCount atomic.Int64
}

func newRuntime(gateway contract.Gateway, topology contract.TopologySync, forwarders contract.ForwarderEngine, scheduler *notificationScheduler, cleanup *cleanupService) *Runtime {
	return &Runtime{
		gateway:    gateway,
		topology:   topology,
		forwarders: forwarders,
		scheduler:  scheduler,
		cleanup:    cleanup,
	}
}

// Start connects the gateway, then brings up topology sync, the forwarder
// cache and the scheduler in order. A missing token leaves the runtime inert
// without failing the process.
func (r *Runtime) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return nil
	}

	r.gateway.OnReady(r.handleReady)
	r.gateway.OnGuildCreate(r.handleGuildCreate)
	r.gateway.OnGuildDelete(r.handleGuildDelete)
	r.gateway.OnMessage(r.forwarders.HandleMessage)

	if err := r.gateway.Connect(); err != nil {
		if errors.Is(err, contract.ErrNoToken) {
			log.Println("Warning: DISCORD_BOT_TOKEN not set, bot runtime stays offline")
			return nil
		}
		return fmt.Errorf("failed to connect gateway: %w", err)
	}

	r.topology.SyncAll()

	if err := r.forwarders.Load(); err != nil {
		log.Printf("Failed to load forwarder cache: %v", err)
	}

	r.scheduler.Start()
	r.cleanup.Start()

	r.started = true
	return nil
}

// Stop halts the scheduler before the session so no send starts against a
// closing gateway.
func (r *Runtime) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return
	}
	r.started = false

	r.scheduler.Stop()
	r.cleanup.Stop()

	if err := r.gateway.Close(); err != nil {
		log.Printf("Failed to close gateway session: %v", err)
	}
}

// Status projects the gateway state for the API layer.
func (r *Runtime) Status() entity.BotStatus {
	gs := r.gateway.Status()
	return entity.BotStatus{
		Online:       gs.Online,
		IdentityName: gs.IdentityName,
		IdentityID:   gs.IdentityID,
		ServerCount:  gs.ServerCount,
	}
}

// ReloadForwarders rebuilds the forwarder cache off the caller's goroutine.
// Safe and idempotent at any time.
func (r *Runtime) ReloadForwarders() {
	go func() {
		if err := r.forwarders.Load(); err != nil {
			log.Printf("Failed to reload forwarder cache: %v", err)
		}
	}()
}

// handleReady runs on every gateway ready. The first one unblocks Connect and
// Start drives the sync itself; later ones mean a reconnect, where topology
// and cache may have drifted.
func (r *Runtime) handleReady() {
	if r.readyCount.Add(1) == 1 {
		return
	}

	go func() {
		r.topology.SyncAll()
		if err := r.forwarders.Load(); err != nil {
			log.Printf("Failed to reload forwarder cache after reconnect: %v", err)
		}
	}()
}

func (r *Runtime) handleGuildCreate(guild contract.GuildInfo) {
	if err := r.topology.SyncServer(guild.PlatformID); err != nil {
		log.Printf("Failed to sync new guild %s: %v", guild.PlatformID, err)
	}
}

func (r *Runtime) handleGuildDelete(platformID string) {
	r.topology.HandleGuildRemoved(platformID)
}
