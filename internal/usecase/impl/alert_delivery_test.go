package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"alertstream/internal/domain/entity"
	mockRepo "alertstream/internal/mocks/repository"
	mockService "alertstream/internal/mocks/service"
	"alertstream/internal/realtime"
	"alertstream/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bufferSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *bufferSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.Write(p)
}

func (s *bufferSink) Flush() {}

func (s *bufferSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, frame := range strings.Split(s.buf.String(), "\n\n") {
		data, ok := strings.CutPrefix(frame, "data: ")
		if !ok {
			continue
		}
		var alert entity.Alert
		if err := json.Unmarshal([]byte(data), &alert); err != nil || alert.Message == "SSE Connection established" {
			continue
		}
		if alert.Message != "" {
			out = append(out, alert.Message)
		}
	}

	return out
}

// liveStack wires the alert service to a real registry and delivery engine.
type liveStack struct {
	manager   *realtime.Manager
	service   usecase.AlertUsecase
	alertRepo *mockRepo.MockAlertRepository
}

func newLiveStack(t *testing.T) liveStack {
	logger := newDiscardLogger()
	registry := realtime.NewRegistry()
	manager := realtime.NewManager(registry, clock.NewMock(), 10*time.Second, logger)
	t.Cleanup(manager.Shutdown)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	alertRepo := mockRepo.NewMockAlertRepository(t)
	dispatcher := NewAlertDispatcher(AlertDispatcherParams{
		Deliverer: realtime.NewEngine(registry, logger, 8, time.Second),
		Publisher: publisher,
		Logger:    logger,
	})

	return liveStack{
		manager: manager,
		service: NewAlertService(AlertServiceParams{
			AlertRepo:  alertRepo,
			Dispatcher: dispatcher,
			Logger:     logger,
		}),
		alertRepo: alertRepo,
	}
}

func (s liveStack) connect(t *testing.T, userID string) *bufferSink {
	sink := &bufferSink{}
	_, err := s.manager.Open(userID, sink)
	require.NoError(t, err)

	return sink
}

func TestAlertService_CreateAlert_ReachesOnlyRecipientTabs(t *testing.T) {
	stack := newLiveStack(t)
	aliceTab1 := stack.connect(t, "alice")
	aliceTab2 := stack.connect(t, "alice")
	bobTab := stack.connect(t, "bob")

	stack.alertRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Alert")).
		Run(persistAlert).
		Return(nil)

	_, err := stack.service.CreateAlert(context.Background(), usecase.CreateAlertInput{
		UserID:  "alice",
		Message: "Server maintenance at 5 PM",
		Kind:    entity.AlertKindManual,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Server maintenance at 5 PM"}, aliceTab1.messages())
	assert.Equal(t, []string{"Server maintenance at 5 PM"}, aliceTab2.messages())
	assert.Empty(t, bobTab.messages())
}

func TestAlertService_CreateAlert_BroadcastWithNoConnectionsStillPersists(t *testing.T) {
	stack := newLiveStack(t)

	stack.alertRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Alert")).
		Run(persistAlert).
		Return(nil).
		Once()

	alert, err := stack.service.CreateAlert(context.Background(), usecase.CreateAlertInput{Message: "anyone there?"})

	require.NoError(t, err)
	assert.True(t, alert.Recipients.Broadcast)
	assert.Zero(t, stack.manager.Stats().OpenConnections)
}

func TestAlertService_CreateAlert_SequentialAlertsKeepOrder(t *testing.T) {
	stack := newLiveStack(t)
	tab := stack.connect(t, "alice")

	stack.alertRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Alert")).
		Run(persistAlert).
		Return(nil)

	for _, message := range []string{"first", "second", "third"} {
		_, err := stack.service.CreateAlert(context.Background(), usecase.CreateAlertInput{UserID: "alice", Message: message})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"first", "second", "third"}, tab.messages())
}
