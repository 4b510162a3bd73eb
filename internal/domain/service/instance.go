package service

import (
	"github.com/zunnuran/discord-bot/internal/domain/contract"
)

type Instance struct {
	Topology   contract.TopologySync
	Forwarders contract.ForwarderEngine
	Scheduler  *notificationScheduler
	Runtime    *Runtime
}

func NewInstance(dm contract.DataManager, gateway contract.Gateway) *Instance {
	topology := newTopology(dm, gateway)
	forwarders := newForwarder(dm, gateway)
	scheduler := newScheduler(dm, gateway)
	cleanup := newCleanup(dm)

	return &Instance{
		Topology:   topology,
		Forwarders: forwarders,
		Scheduler:  scheduler,
		Runtime:    newRuntime(gateway, topology, forwarders, scheduler, cleanup),
	}
}
