package worker

import (
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// StartNotificationWorker subscribes the notification center to the
// ticket event stream.
func StartNotificationWorker(center *service.NotificationCenter) {
	if center == nil {
		return
	}
	center.RegisterHandlers()
}
