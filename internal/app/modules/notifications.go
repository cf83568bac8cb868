package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/jobs"
	"formgate.io/formgate/internal/notification"
)

// NotificationsModule owns inbox delivery: the sender, the lifecycle
// triggers, and the River workers that run them. It must exist before the
// River client is created because workers register at client construction.
type NotificationsModule struct {
	infra    *Infrastructure
	notifier *notification.Triggers
}

// NewNotificationsModule creates the notifications module.
func NewNotificationsModule(infra *Infrastructure) (*NotificationsModule, error) {
	if infra == nil || infra.EntClient == nil || infra.Config == nil {
		return nil, fmt.Errorf("notifications module requires ent client and config")
	}

	sender := notification.NewInboxSender(infra.EntClient)
	return &NotificationsModule{
		infra:    infra,
		notifier: notification.NewTriggers(sender),
	}, nil
}

func (m *NotificationsModule) Name() string { return "notifications" }

// ContributeServerDeps is a no-op: notification reads go straight through
// the shared ent client.
func (m *NotificationsModule) ContributeServerDeps(_ *handlers.ServerDeps) {}

func (m *NotificationsModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewSubmissionNotifyWorker(m.infra.EntClient, m.notifier))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.infra.EntClient, m.infra.Config.Notification.Retention))
}

func (m *NotificationsModule) Shutdown(context.Context) error { return nil }
