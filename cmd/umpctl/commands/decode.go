package commands

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ump-protocol/ump-go/pkg/inspect"
	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// DecodeOptions controls the decode commands.
type DecodeOptions struct {
	Output     string
	ShowAbsent bool
	Source     string
}

// RunDecode splits input into packets and prints each decoded packet.
// Packets that fail to decode are printed as errors; the command itself
// fails only on unparsable input.
func RunDecode(input string, opts DecodeOptions, session *Session, w io.Writer) error {
	words, err := inspect.ParseWords(input)
	if err != nil {
		return fmt.Errorf("failed to parse words: %w", err)
	}
	reports := inspect.NewInspector(session.Events, opts.Source).InspectStream(words)
	session.Slog.Debug("decoded stream", "words", len(words), "packets", len(reports))
	return writeReports(w, reports, opts)
}

// RunDecodeBytes decodes one legacy byte-form message.
func RunDecodeBytes(input string, opts DecodeOptions, session *Session, w io.Writer) error {
	data, err := inspect.ParseBytes(input)
	if err != nil {
		return fmt.Errorf("failed to parse bytes: %w", err)
	}
	report := inspect.NewInspector(session.Events, opts.Source).Inspect(data)
	return writeReports(w, []*inspect.Report{report}, opts)
}

func writeReports(w io.Writer, reports []*inspect.Report, opts DecodeOptions) error {
	if opts.Output == OutputYAML {
		out, err := inspect.FormatYAML(reports)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	f := inspect.NewFormatter()
	f.ShowAbsent = opts.ShowAbsent
	_, err := io.WriteString(w, f.FormatReports(reports))
	return err
}

// RunSplit prints the packets of input one per line without decoding them.
// With attach set, a leading jitter-reduction word is joined to the packet
// it precedes.
func RunSplit(input string, attach bool, w io.Writer) error {
	words, err := inspect.ParseWords(input)
	if err != nil {
		return fmt.Errorf("failed to parse words: %w", err)
	}
	packets, splitErr := ump.Split(words)
	if attach {
		packets = ump.Attach(packets)
	}
	for i, p := range packets {
		fmt.Fprintf(w, "%3d  %s\n", i, inspect.FormatUnits(p))
	}
	if splitErr != nil {
		consumed := 0
		for _, p := range packets {
			consumed += len(p)
		}
		fmt.Fprintf(w, "  -  %s (%v)\n", inspect.FormatUnits(wire.Words(words[consumed:])), splitErr)
	}
	return nil
}

// RunShapes lists the shapes of one family, or of all families when family
// is empty.
func RunShapes(family, output string, w io.Writer) error {
	infos, ok := inspect.ListShapes(family)
	if !ok {
		return fmt.Errorf("unknown family: %s", family)
	}
	if output == OutputYAML {
		enc := yamlEncoder(w)
		defer enc.Close()
		return enc.Encode(infos)
	}
	current := ""
	for _, info := range infos {
		if info.Family != current {
			current = info.Family
			fmt.Fprintf(w, "%s:\n", current)
		}
		size := fmt.Sprintf("%dw", info.Words)
		if info.Bytes > 0 {
			size += fmt.Sprintf(" %db", info.Bytes)
		}
		fmt.Fprintf(w, "  %-28s %-8s %v\n", info.Name, size, info.Fields)
	}
	return nil
}

func yamlEncoder(w io.Writer) *yaml.Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc
}
