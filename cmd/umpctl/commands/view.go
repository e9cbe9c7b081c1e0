package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ump-protocol/ump-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	Family    string
	Shape     string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Layer:     f.Layer,
		Direction: f.Direction,
		Category:  f.Category,
		Family:    f.Family,
		Shape:     f.Shape,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] #index DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)

	var typeLabel string
	switch {
	case event.Packet != nil:
		typeLabel = "Packet"
	case event.Message != nil:
		typeLabel = event.Message.Shape
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] #%d %s %s %s\n", ts, session, event.Index,
		event.Direction.String(), event.Layer.String(), typeLabel)
	if event.Source != "" {
		fmt.Fprintf(w, "  Source: %s\n", event.Source)
	}

	switch {
	case event.Packet != nil:
		formatPacketDetails(w, event.Packet)
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatPacketDetails(w io.Writer, p *log.PacketEvent) {
	unit := "words"
	if p.Bytes != nil {
		unit = "bytes"
	}
	fmt.Fprintf(w, "  Size: %d %s\n", p.Size, unit)
	fmt.Fprintf(w, "  Units: %s", packetUnits(p))
	if p.Truncated {
		fmt.Fprint(w, " (truncated)")
	}
	fmt.Fprintln(w)
}

func packetUnits(p *log.PacketEvent) string {
	parts := make([]string, 0, len(p.Words)+len(p.Bytes))
	for _, word := range p.Words {
		parts = append(parts, fmt.Sprintf("%08X", word))
	}
	for _, b := range p.Bytes {
		parts = append(parts, fmt.Sprintf("%02X", b))
	}
	return strings.Join(parts, " ")
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	fmt.Fprintf(w, "  Family: %s\n", msg.Family)
	if msg.Prefix {
		fmt.Fprintln(w, "  Prefix: yes")
	}
	for _, f := range msg.Fields {
		fmt.Fprintf(w, "    %s: %s\n", f.Name, f.Value)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Kind != "" {
		fmt.Fprintf(w, "  Kind: %s\n", err.Kind)
	}
	if err.Family != "" {
		fmt.Fprintf(w, "  Family: %s (level %d)\n", err.Family, err.Level)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "stream":
		return log.LayerStream, nil
	case "dispatch":
		return log.LayerDispatch, nil
	case "shape":
		return log.LayerShape, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be stream, dispatch, or shape)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "decode":
		return log.DirectionDecode, nil
	case "encode":
		return log.DirectionEncode, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be decode or encode)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "packet":
		return log.CategoryPacket, nil
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be packet, message, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
