package inspect

import (
	"errors"
	"io"

	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Report is the displayable result of decoding one packet.
type Report struct {
	Family string     `yaml:"family,omitempty"`
	Shape  string     `yaml:"shape,omitempty"`
	Kind   string     `yaml:"kind"`
	Units  string     `yaml:"units"`
	Prefix bool       `yaml:"prefix,omitempty"`
	Fields []FieldRow `yaml:"fields,omitempty"`
	Error  *ErrorInfo `yaml:"error,omitempty"`
}

// FieldRow is one decoded field. Unit and Human are set for fields with a
// physical meaning.
type FieldRow struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Unit  string `yaml:"unit,omitempty"`
	Human string `yaml:"human,omitempty"`
}

// ErrorInfo describes a decode failure.
type ErrorInfo struct {
	Kind    string `yaml:"kind,omitempty"`
	Message string `yaml:"message"`
	Family  string `yaml:"family,omitempty"`
	Level   int    `yaml:"level,omitempty"`
	Field   string `yaml:"field,omitempty"`
}

// Inspector decodes packets into Reports.
type Inspector struct {
	logger log.Logger
	source string
}

// NewInspector creates an Inspector that reports stream decoding to logger.
// A nil logger discards events.
func NewInspector(logger log.Logger, source string) *Inspector {
	return &Inspector{logger: log.OrNoop(logger), source: source}
}

// Inspect decodes a single packet.
func (i *Inspector) Inspect(v wire.View) *Report {
	m, err := ump.Parse(v)
	return newReport(v, m, err)
}

// InspectStream splits words into packets and decodes each one. Packets
// that fail to decode yield a Report with Error set.
func (i *Inspector) InspectStream(words []uint32) []*Report {
	dec := ump.NewDecoder(words, ump.WithLogger(i.logger), ump.WithSource(i.source))
	var reports []*Report
	for {
		m, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return reports
		}
		reports = append(reports, newReport(dec.Last(), m, err))
	}
}

func newReport(v wire.View, m wire.Decoded, err error) *Report {
	r := &Report{Kind: v.Kind().String(), Units: FormatUnits(v)}
	if err != nil {
		ev := log.NewErrorEvent(log.LayerDispatch, err)
		r.Error = &ErrorInfo{
			Kind:    ev.Kind,
			Message: ev.Message,
			Family:  ev.Family,
			Level:   ev.Level,
			Field:   ev.Context,
		}
		return r
	}
	r.Family = ump.FamilyOf(m)
	r.Shape = m.Shape().Name
	r.Prefix = m.HasPrefix()
	for _, f := range m.Fields() {
		row := FieldRow{Name: f.Name, Value: log.FormatValue(f.Value)}
		row.Unit, row.Human = describeUnit(r.Shape, f.Name, f.Value)
		r.Fields = append(r.Fields, row)
	}
	return r
}
