package notifier

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

var (
	dispatcherInstance contracts.NotificationDispatcher
	onceDispatcher     sync.Once
)

type notificationDispatcher struct {
	Channels map[string]contracts.Channel
	Log      *zap.Logger
}

func NewNotificationDispatcher(logger *zap.Logger, channels ...contracts.Channel) contracts.NotificationDispatcher {
	onceDispatcher.Do(func() {
		byName := make(map[string]contracts.Channel, len(channels))
		for _, channel := range channels {
			byName[channel.Name()] = channel
		}
		dispatcherInstance = &notificationDispatcher{
			Channels: byName,
			Log:      logger,
		}
	})
	return dispatcherInstance
}

// Dispatch fans the request out to every requested channel for every
// recipient. Each send is independent: a failed channel is recorded in
// the report and never blocks the remaining sends. No retries here.
func (d *notificationDispatcher) Dispatch(ctx context.Context, request *models.NotificationRequest) *models.DispatchReport {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	report := &models.DispatchReport{EventID: request.EventID}
	for _, channelName := range request.Channels {
		channel, ok := d.Channels[channelName]
		if !ok {
			d.Log.Warn("notificationDispatcher.Dispatch unknown channel requested",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingChannelKey, channelName),
			)
			for _, recipient := range request.Recipients {
				report.Deliveries = append(report.Deliveries, models.ChannelDelivery{
					Channel:   channelName,
					Recipient: recipient,
					Status:    models.DeliveryStatusFailed,
					Reason:    "channel not configured",
				})
			}
			continue
		}

		for _, recipient := range request.Recipients {
			err := channel.Send(ctx, recipient, request.Message)
			if err != nil {
				d.Log.Error("notificationDispatcher.Dispatch channel send failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingChannelKey, channelName),
					zap.String(constvars.LoggingRecipientKey, recipient),
					zap.Error(err),
				)
				report.Deliveries = append(report.Deliveries, models.ChannelDelivery{
					Channel:   channelName,
					Recipient: recipient,
					Status:    models.DeliveryStatusFailed,
					Reason:    err.Error(),
				})
				continue
			}
			report.Deliveries = append(report.Deliveries, models.ChannelDelivery{
				Channel:   channelName,
				Recipient: recipient,
				Status:    models.DeliveryStatusDelivered,
			})
		}
	}

	d.Log.Info("notificationDispatcher.Dispatch finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, request.EventID),
		zap.Int(constvars.LoggingChannelCountKey, len(request.Channels)),
		zap.Int(constvars.LoggingFailedChannelCountKey, report.FailedCount()),
	)
	return report
}
