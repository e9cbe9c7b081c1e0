package log_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/log/mocks"
)

func TestMultiLoggerCallsAll(t *testing.T) {
	event := log.Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Direction: log.DirectionDecode,
		Layer:     log.LayerStream,
		Category:  log.CategoryPacket,
	}

	var loggers []log.Logger
	for range 3 {
		m := mocks.NewMockLogger(t)
		m.EXPECT().Log(event).Return().Once()
		loggers = append(loggers, m)
	}

	log.NewMultiLogger(loggers...).Log(event)
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := log.NewMultiLogger()
	multi.Log(log.Event{Timestamp: time.Now(), SessionID: "session-123"})
}

func TestMultiLoggerPreservesOrder(t *testing.T) {
	var order []int
	first := mocks.NewMockLogger(t)
	first.EXPECT().Log(mock.Anything).Run(func(log.Event) { order = append(order, 1) }).Once()
	second := mocks.NewMockLogger(t)
	second.EXPECT().Log(mock.Anything).Run(func(log.Event) { order = append(order, 2) }).Once()

	log.NewMultiLogger(first, second).Log(log.Event{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestMultiLoggerInterfaceSatisfaction(t *testing.T) {
	var _ log.Logger = (*log.MultiLogger)(nil)
	var _ log.Logger = (*mocks.MockLogger)(nil)
}

func TestMultiLoggerFlattens(t *testing.T) {
	var got []int
	a := log.LoggerFunc(func(log.Event) { got = append(got, 1) })
	b := log.LoggerFunc(func(log.Event) { got = append(got, 2) })

	inner := log.NewMultiLogger(a, nil, log.NoopLogger{})
	log.NewMultiLogger(inner, b).Log(log.Event{})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestCombine(t *testing.T) {
	assert.Equal(t, log.NoopLogger{}, log.Combine())
	assert.Equal(t, log.NoopLogger{}, log.Combine(nil, log.NoopLogger{}))

	single := mocks.NewMockLogger(t)
	assert.Same(t, single, log.Combine(single, log.NoopLogger{}))

	assert.IsType(t, &log.MultiLogger{}, log.Combine(single, mocks.NewMockLogger(t)))
}

func TestMultiLoggerClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.ulog")
	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)

	multi := log.NewMultiLogger(mocks.NewMockLogger(t), fl)
	require.NoError(t, multi.Close())

	// The file logger is closed: further events are ignored.
	fl.Log(log.Event{Timestamp: time.Now()})
	assert.Zero(t, fl.Dropped())
	assert.NoError(t, fl.Close())
}
