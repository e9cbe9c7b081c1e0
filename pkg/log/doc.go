// Package log provides structured codec logging for UMP streams.
//
// This package defines the Logger interface and Event types for capturing
// codec events at three layers (stream, dispatch, shape). It is separate
// from operational logging (slog): a codec capture is a complete
// machine-readable trace of what was split, classified and decoded.
//
// # Basic Usage
//
// Decoders accept a Logger:
//
//	// For development: log to console via slog
//	dec := ump.NewDecoder(words, ump.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For capture: write to binary file
//	fl, _ := log.NewFileLogger("session.ulog")
//	dec := ump.NewDecoder(words, ump.WithLogger(fl))
//
//	// Both: Combine builds a MultiLogger when more than one is set
//	logger := log.Combine(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
// Events are captured at multiple layers:
//   - Stream: Raw packet units (PacketEvent)
//   - Dispatch and Shape: Decoded messages (MessageEvent)
//
// Errors at any layer carry an ErrorEventData classified by wire error kind.
//
// # File Format
//
// A .ulog file is a CBOR sequence: the RFC 9277 header (tag 55800 over
// "BOR") followed by one record per event with integer keys. Readers accept
// files without the header. The umpctl tool provides viewing, filtering,
// export and statistics.
package log
