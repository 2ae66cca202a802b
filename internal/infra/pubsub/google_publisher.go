package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"alertstream/internal/domain/service"
	"alertstream/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger

	// acks tracks publish results still waiting for the server
	acks sync.WaitGroup
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return newGooglePubSubPublisher(client, topicID, logger), nil
}

func newGooglePubSubPublisher(client *pubsub.Client, topicID string, logger *slog.Logger) *googlePubSubPublisher {
	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}
}

// PublishAlertEvent hands the event to the batching publisher and returns without
// waiting for the server acknowledgement, which is logged when it arrives.
func (p *googlePubSubPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	p.acks.Add(1)
	go func() {
		defer p.acks.Done()

		serverID, err := result.Get(context.WithoutCancel(ctx))
		if err != nil {
			p.logger.Warn("[GooglePubSub] Failed to publish alert event",
				slog.String("alert_id", event.AlertID),
				slog.Any("error", err),
			)

			return
		}

		p.logger.Debug("[GooglePubSub] Alert event published",
			slog.String("alert_id", event.AlertID),
			slog.String("server_id", serverID),
			slog.Int("recipient_count", len(event.UserIDs)),
		)
	}()

	return nil
}

// Close flushes pending messages and releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	p.acks.Wait()
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// eventAttributes builds the message attributes used for subscription filtering and tracing
func eventAttributes(event *service.AlertEvent) map[string]string {
	attributes := map[string]string{
		"type":      event.Type,
		"alert_id":  event.AlertID,
		"kind":      event.Kind,
		"broadcast": fmt.Sprintf("%t", event.Broadcast),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
