package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeService struct {
	name      string
	startErr  error
	exitEarly bool
	stopped   atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	if s.exitEarly {
		return nil
	}
	<-ctx.Done()
	return nil
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	boom := errors.New("listen failed")
	failing := &fakeService{name: "http", startErr: boom}
	idle := &fakeService{name: "idle"}

	err := NewRunner(failing, idle).Run(context.Background(), time.Second, zap.NewNop().Sugar())
	require.ErrorIs(t, err, boom)
	assert.True(t, failing.stopped.Load())
	assert.True(t, idle.stopped.Load())
}

func TestRunnerCancelIsClean(t *testing.T) {
	idle := &fakeService{name: "idle"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(idle).Run(ctx, time.Second, nil)
	assert.NoError(t, err)
	assert.True(t, idle.stopped.Load())
}

func TestRunnerWrapsFailureWithServiceName(t *testing.T) {
	boom := errors.New("bind: address already in use")
	err := NewRunner(&fakeService{name: "http", startErr: boom}).Run(context.Background(), time.Second, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "http:")
}

func TestRunnerTreatsEarlyExitAsFailure(t *testing.T) {
	quitter := &fakeService{name: "worker", exitEarly: true}
	idle := &fakeService{name: "idle"}

	err := NewRunner(quitter, idle).Run(context.Background(), time.Second, nil)
	require.ErrorIs(t, err, errServiceExited)
	assert.True(t, idle.stopped.Load())
}

func TestRunnerRejectsNilService(t *testing.T) {
	idle := &fakeService{name: "idle"}
	err := NewRunner(idle, nil).Run(context.Background(), time.Second, nil)
	require.Error(t, err)
	assert.False(t, idle.stopped.Load())
}

func TestResourceServiceStopJoinsErrors(t *testing.T) {
	svc := &ResourceService{
		shutdownTracing: func(context.Context) error { return errors.New("flush failed") },
		closeCache:      func() error { return errors.New("close failed") },
	}
	err := svc.Stop(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
	assert.Contains(t, err.Error(), "close failed")

	assert.NoError(t, NewResourceService(nil).Stop(context.Background()))
}

func TestBuildRunnerRequiresConfig(t *testing.T) {
	_, err := BuildRunner(context.Background(), nil, "test")
	assert.Error(t, err)
}
