package handler

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadlineRecorder is a response writer that records write deadlines.
type deadlineRecorder struct {
	*httptest.ResponseRecorder
	deadlines []time.Time
	err       error
}

func (r *deadlineRecorder) SetWriteDeadline(deadline time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.deadlines = append(r.deadlines, deadline)

	return nil
}

func TestStreamSink_SetsDeadlineBeforeEveryWrite(t *testing.T) {
	rec := &deadlineRecorder{ResponseRecorder: httptest.NewRecorder()}
	sink := newStreamSink(echo.NewResponse(rec, echo.New()), 5*time.Second)

	before := time.Now()
	_, err := sink.Write([]byte(": heartbeat\n\n"))
	require.NoError(t, err)
	_, err = sink.Write([]byte("data: {}\n\n"))
	require.NoError(t, err)
	sink.Flush()

	require.Len(t, rec.deadlines, 2)
	for _, deadline := range rec.deadlines {
		assert.WithinDuration(t, before.Add(5*time.Second), deadline, time.Second)
	}
	assert.Equal(t, ": heartbeat\n\ndata: {}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed)

	sink.release()
	require.Len(t, rec.deadlines, 3)
	assert.True(t, rec.deadlines[2].IsZero())
}

func TestStreamSink_DeadlineFailureFailsWrite(t *testing.T) {
	rec := &deadlineRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		err:              errors.New("connection reset"),
	}
	sink := newStreamSink(echo.NewResponse(rec, echo.New()), time.Second)

	_, err := sink.Write([]byte("data: {}\n\n"))

	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestStreamSink_WritesWhenDeadlinesUnsupported(t *testing.T) {
	rec := httptest.NewRecorder()
	sink := newStreamSink(echo.NewResponse(rec, echo.New()), 0)

	_, err := sink.Write([]byte("data: {}\n\n"))

	require.NoError(t, err)
	assert.Equal(t, defaultStreamWriteTimeout, sink.timeout)
	assert.Equal(t, "data: {}\n\n", rec.Body.String())
}
