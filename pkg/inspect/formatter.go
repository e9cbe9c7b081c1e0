package inspect

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/numeric"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowUnits includes the raw packet units
	ShowUnits bool

	// ShowAbsent includes optional fields that are not present
	ShowAbsent bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowUnits:   true,
		ShowAbsent:  false,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatReport renders r as an indented text block.
func (f *Formatter) FormatReport(r *Report) string {
	var sb strings.Builder
	if r.Error != nil {
		sb.WriteString("error: " + r.Error.Message)
	} else {
		fmt.Fprintf(&sb, "%s (%s)", r.Shape, r.Family)
	}
	if f.ShowUnits {
		fmt.Fprintf(&sb, " [%s]", r.Units)
	}
	sb.WriteString("\n")
	for _, row := range r.Fields {
		if row.Value == log.Absent && !f.ShowAbsent {
			continue
		}
		line := row.Name + ": " + row.Value
		if row.Unit != "" {
			line += " " + row.Unit
		}
		if row.Human != "" {
			line += " (" + row.Human + ")"
		}
		sb.WriteString(f.Indent(1, line) + "\n")
	}
	return sb.String()
}

// FormatReports renders every report in order.
func (f *Formatter) FormatReports(reports []*Report) string {
	var sb strings.Builder
	for _, r := range reports {
		sb.WriteString(f.FormatReport(r))
	}
	return sb.String()
}

// FormatYAML renders reports as a YAML sequence.
func FormatYAML(reports []*Report) (string, error) {
	out, err := yaml.Marshal(reports)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// describeUnit returns the unit and a human-readable rendering for fields
// with a physical meaning.
func describeUnit(shape, field string, value any) (unit, human string) {
	switch {
	case shape == "SetTempo" && field == "tempo":
		if v, ok := value.(uint32); ok {
			return "x10ns", FormatTempo(v)
		}
	case shape == "SongPositionPointer" && field == "position":
		if v, ok := value.(numeric.U14); ok {
			return "sixteenths", fmt.Sprintf("bar %d beat %d", v/16+1, v%16/4+1)
		}
	case field == "bend":
		switch v := value.(type) {
		case numeric.U14:
			return "", FormatBend(int64(v)-0x2000, 0x2000)
		case uint32:
			return "", FormatBend(int64(v)-0x8000_0000, 0x8000_0000)
		}
	}
	return "", ""
}

// FormatTempo converts a tempo in 10 ns units per quarter note to beats per
// minute.
func FormatTempo(tenNanos uint32) string {
	if tenNanos == 0 {
		return "stopped"
	}
	return fmt.Sprintf("%.2f BPM", 6e9/float64(tenNanos))
}

// FormatBend renders a pitch bend offset from center as a signed fraction
// of full range.
func FormatBend(offset, half int64) string {
	return fmt.Sprintf("%+.4f", float64(offset)/float64(half))
}
