package log

import (
	"errors"
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "test-session",
		Direction: DirectionDecode,
		Layer:     LayerStream,
		Category:  CategoryPacket,
	}
	logger.Log(event)

	event.Packet = &PacketEvent{Size: 1, Words: []uint32{0}}
	logger.Log(event)

	event.Packet = nil
	event.Message = &MessageEvent{Family: "utility", Shape: "NoOp"}
	logger.Log(event)

	event.Message = nil
	event.Error = NewErrorEvent(LayerShape, errors.New("test error"))
	logger.Log(event)
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestLoggerFunc(t *testing.T) {
	var got []int
	l := LoggerFunc(func(e Event) { got = append(got, e.Index) })
	l.Log(Event{Index: 3})
	l.Log(Event{Index: 4})
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("got %v, want [3 4]", got)
	}
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Errorf("OrNoop(nil) = %T, want NoopLogger", OrNoop(nil))
	}
	fl := &FileLogger{}
	if OrNoop(fl) != Logger(fl) {
		t.Error("OrNoop must return a non-nil logger unchanged")
	}
}
