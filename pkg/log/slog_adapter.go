package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SlogAdapter writes codec events to an slog.Logger.
// Useful for development when you want to see decoded packets in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
		slog.Int("index", event.Index),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}

	// Add type-specific attributes
	switch {
	case event.Packet != nil:
		attrs = append(attrs,
			slog.Int("packet_size", event.Packet.Size),
			slog.String("units", formatUnits(event.Packet)),
		)
		if event.Packet.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.Message != nil:
		attrs = append(attrs,
			slog.String("family", event.Message.Family),
			slog.String("shape", event.Message.Shape),
		)
		if event.Message.Prefix {
			attrs = append(attrs, slog.Bool("prefix", true))
		}
		fields := make([]any, 0, len(event.Message.Fields))
		for _, f := range event.Message.Fields {
			fields = append(fields, slog.String(f.Name, f.Value))
		}
		attrs = append(attrs, slog.Group("fields", fields...))
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Kind != "" {
			attrs = append(attrs, slog.String("error_kind", event.Error.Kind))
		}
		if event.Error.Family != "" {
			attrs = append(attrs,
				slog.String("error_family", event.Error.Family),
				slog.Int("error_level", event.Error.Level),
			)
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "ump", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)

func formatUnits(p *PacketEvent) string {
	var sb strings.Builder
	if p.Bytes != nil {
		for i, b := range p.Bytes {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02X", b)
		}
		return sb.String()
	}
	for i, w := range p.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08X", w)
	}
	return sb.String()
}
