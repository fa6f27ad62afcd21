package service

import (
	"clubhub/client"
	"clubhub/metrics"
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const listenerTimeout = 10 * time.Second

// RegistrationListener receives registration messages once the write that produced them has committed.
type RegistrationListener interface {
	Name() string
	Publish(ctx context.Context, message *client.RegistrationMessage) error
}

// RegistrationDispatcher fans messages out to every listener in the background. A failing
// listener is logged and counted, the request that triggered it still succeeds.
type RegistrationDispatcher struct {
	mu        sync.RWMutex
	listeners []RegistrationListener
	wg        sync.WaitGroup
}

func NewRegistrationDispatcher(listeners ...RegistrationListener) *RegistrationDispatcher {
	return &RegistrationDispatcher{listeners: listeners}
}

func (d *RegistrationDispatcher) AddListener(listener RegistrationListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

func (d *RegistrationDispatcher) Dispatch(ctx context.Context, message *client.RegistrationMessage) {
	if d == nil || message == nil {
		return
	}
	d.mu.RLock()
	listeners := append([]RegistrationListener(nil), d.listeners...)
	d.mu.RUnlock()

	// the request context is cancelled as soon as the handler returns
	detached := context.WithoutCancel(ctx)
	for _, listener := range listeners {
		d.wg.Add(1)
		go func(listener RegistrationListener) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(detached, listenerTimeout)
			defer cancel()
			if err := listener.Publish(ctx, message); err != nil {
				metrics.ListenerFailures.WithLabelValues(listener.Name()).Inc()
				log.WithFields(log.Fields{
					"listener":       listener.Name(),
					"type":           message.Type,
					"participant_id": message.ParticipantId,
				}).WithError(err).Warn("could not deliver registration message")
			}
		}(listener)
	}
}

// Wait blocks until every dispatched message has been handed to its listeners.
func (d *RegistrationDispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
