package log

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A .ulog file is a CBOR sequence of events. New files start with the
// RFC 9277 sequence header: tag 55800 wrapping the byte string "BOR".
const fileMagicTag = 55800

var fileMagic = []byte{0xD9, 0xD9, 0xF8, 0x43, 0x42, 0x4F, 0x52}

var (
	// Canonical encoding with RFC3339Nano timestamps, so identical events
	// encode to identical bytes.
	logEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	// Unknown keys are skipped so files written by newer versions still
	// read. Packet payloads are small; the limits reject corrupt lengths
	// before allocating.
	logDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxArrayElements:  1 << 16,
		MaxMapPairs:       1 << 12,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	m, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: CBOR encoder mode: %v", err))
	}
	return m
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	m, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: CBOR decoder mode: %v", err))
	}
	return m
}

// EncodeEvent encodes an Event to CBOR bytes using integer keys for compactness.
func EncodeEvent(event Event) ([]byte, error) {
	return logEncMode.Marshal(event)
}

// DecodeEvent decodes CBOR bytes into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := logDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a CBOR encoder for log events that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return logEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for log events that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return logDecMode.NewDecoder(r)
}

// WriteHeader writes the .ulog file header.
func WriteHeader(w io.Writer) error {
	_, err := w.Write(fileMagic)
	return err
}

// SkipHeader consumes the .ulog file header if r starts with one. It
// reports whether a header was found. Files without a header are read from
// the first event.
func SkipHeader(r *bufio.Reader) (bool, error) {
	head, err := r.Peek(len(fileMagic))
	if err == io.EOF || err == bufio.ErrBufferFull || (err == nil && !bytes.Equal(head, fileMagic)) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = r.Discard(len(fileMagic))
	return err == nil, err
}
