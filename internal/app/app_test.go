package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/mocks"
)

type fakeServer struct {
	startErr error
	stopErr  error
	stopped  bool
}

func (s *fakeServer) Start() error { return s.startErr }

func (s *fakeServer) Stop(context.Context) error {
	s.stopped = true
	return s.stopErr
}

func newTestApp(t *testing.T, srv *fakeServer) (*App, *mocks.MockJobDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockJobDispatcher(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(&config.Config{}, srv, dispatcher, logger), dispatcher
}

func TestApp_Start(t *testing.T) {
	a, _ := newTestApp(t, &fakeServer{})
	assert.NoError(t, a.Start())

	failing, _ := newTestApp(t, &fakeServer{startErr: errors.New("address in use")})
	assert.Error(t, failing.Start())
}

func TestApp_StopDrainsDispatcher(t *testing.T) {
	srv := &fakeServer{}
	a, dispatcher := newTestApp(t, srv)
	dispatcher.EXPECT().Stop().Times(1)

	assert.NoError(t, a.Stop(context.Background()))
	assert.True(t, srv.stopped)
}

func TestApp_StopReportsServerError(t *testing.T) {
	srv := &fakeServer{stopErr: context.DeadlineExceeded}
	a, dispatcher := newTestApp(t, srv)
	dispatcher.EXPECT().Stop().Times(1)

	assert.ErrorIs(t, a.Stop(context.Background()), context.DeadlineExceeded)
}
