package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"alertstream/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProject = "alertstream-test"

func newFakePubSub(t *testing.T) (*pstest.Server, *pubsub.Client) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	client, err := pubsub.NewClient(context.Background(), testProject, option.WithGRPCConn(conn))
	require.NoError(t, err)

	return srv, client
}

func TestGooglePubSubPublisher_PublishesWithAttributes(t *testing.T) {
	srv, client := newFakePubSub(t)
	_, err := srv.GServer.CreateTopic(context.Background(), &pubsubpb.Topic{
		Name: "projects/" + testProject + "/topics/alert-events",
	})
	require.NoError(t, err)

	publisher := newGooglePubSubPublisher(client, "alert-events", newDiscardLogger())
	event := newEvent()

	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))
	require.NoError(t, publisher.Close())

	messages := srv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, map[string]string{
		"type":       service.AlertEventType,
		"alert_id":   event.AlertID,
		"kind":       "manual",
		"broadcast":  "false",
		"request_id": "req-1",
	}, messages[0].Attributes)

	var decoded service.AlertEvent
	require.NoError(t, json.Unmarshal(messages[0].Data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestGooglePubSubPublisher_FailedAckIsLoggedNotReturned(t *testing.T) {
	_, client := newFakePubSub(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	publisher := newGooglePubSubPublisher(client, "missing-topic", logger)

	require.NoError(t, publisher.PublishAlertEvent(context.Background(), newEvent()))
	require.NoError(t, publisher.Close())

	assert.Contains(t, buf.String(), "Failed to publish alert event")
	assert.Contains(t, buf.String(), newEvent().AlertID)
}
