package handler

import (
	"net/http"
	"time"

	"alertstream/internal/errors"

	"github.com/labstack/echo/v4"
)

const defaultStreamWriteTimeout = 10 * time.Second

// streamSink writes push frames to the response with a deadline on every write, so a
// client that stops reading fails the write instead of holding delivery up.
type streamSink struct {
	res        *echo.Response
	controller *http.ResponseController
	timeout    time.Duration
}

func newStreamSink(res *echo.Response, timeout time.Duration) *streamSink {
	if timeout <= 0 {
		timeout = defaultStreamWriteTimeout
	}

	return &streamSink{
		res:        res,
		controller: http.NewResponseController(res.Writer),
		timeout:    timeout,
	}
}

func (s *streamSink) Write(p []byte) (int, error) {
	if err := s.setDeadline(time.Now().Add(s.timeout)); err != nil {
		return 0, err
	}

	return s.res.Write(p)
}

func (s *streamSink) Flush() {
	s.res.Flush()
}

// release clears the deadline so a reused connection is not cut by a stale one.
func (s *streamSink) release() {
	_ = s.setDeadline(time.Time{})
}

func (s *streamSink) setDeadline(deadline time.Time) error {
	err := s.controller.SetWriteDeadline(deadline)
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		return errors.Wrap(err, "failed to set write deadline")
	}

	return nil
}
