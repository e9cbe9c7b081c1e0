// Command umpctl decodes Universal MIDI Packets and inspects codec logs.
//
// Usage:
//
//	umpctl <command> [flags] <args>
//
// Commands:
//
//	decode        Decode a stream of 32-bit words
//	decode-bytes  Decode one legacy MIDI 1.0 byte-form message
//	split         Show packet boundaries of a word stream
//	shapes        List message families and shapes
//	console       Interactive decoder
//	log           View, filter, export or summarise a codec log file
//
// Examples:
//
//	# Decode a MIDI 2.0 note on
//	umpctl decode 0x4090_3C00 0xC000_0000
//
//	# Decode legacy bytes as YAML
//	umpctl decode-bytes -output yaml 90 3C 7F
//
//	# Record codec events while decoding
//	umpctl decode -protocol-log session.ulog 0x0020_1234 0x2090_3C7F
//
//	# View only error events
//	umpctl log view -category error session.ulog
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ump-protocol/ump-go/cmd/umpctl/commands"
)

const usage = `umpctl - Universal MIDI Packet codec tool

Usage:
  umpctl <command> [flags] <args>

Commands:
  decode        Decode a stream of 32-bit words
  decode-bytes  Decode one legacy MIDI 1.0 byte-form message
  split         Show packet boundaries of a word stream
  shapes        List message families and shapes
  console       Interactive decoder
  log           View, filter, export or summarise a codec log file

Use "umpctl <command> -help" for more information about a command.
`

const logUsage = `umpctl log - Codec log file tools

Usage:
  umpctl log <view|export|filter|stats> [flags] <file.ulog>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "decode":
		runDecode(args, false)
	case "decode-bytes":
		runDecode(args, true)
	case "split":
		runSplit(args)
	case "shapes":
		runShapes(args)
	case "console":
		runConsole(args)
	case "log":
		runLog(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// configFlags registers the flags shared by commands that read the config
// file. The returned function resolves the effective configuration.
func configFlags(fs *flag.FlagSet) func() commands.Config {
	var path string
	var override commands.Config
	fs.StringVar(&path, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&override.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&override.ProtocolLog, "protocol-log", "", "Write codec events to this file")
	fs.StringVar(&override.Output, "output", "", "Output format: text, yaml")
	return func() commands.Config {
		cfg, err := commands.LoadConfig(path)
		if err != nil {
			fatal(err)
		}
		cfg.Override(override)
		if err := cfg.Validate(); err != nil {
			fatal(err)
		}
		return cfg
	}
}

func runDecode(args []string, bytesForm bool) {
	name, unit := "decode", "<word>..."
	if bytesForm {
		name, unit = "decode-bytes", "<byte>..."
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl %s - Decode and print messages

Usage:
  umpctl %s [flags] %s

Units are hex with a 0x prefix, bare hex of full width, or decimal.
Underscores may separate digits.

Flags:
`, name, name, unit)
		fs.PrintDefaults()
	}
	resolve := configFlags(fs)
	absent := fs.Bool("absent", false, "Print absent optional fields")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: input units required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := resolve()
	session, err := commands.NewSession(cfg, os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer session.Close()

	opts := commands.DecodeOptions{Output: cfg.Output, ShowAbsent: *absent, Source: "args"}
	input := strings.Join(fs.Args(), " ")
	run := commands.RunDecode
	if bytesForm {
		run = commands.RunDecodeBytes
	}
	if err := run(input, opts, session, os.Stdout); err != nil {
		session.Close()
		fatal(err)
	}
}

func runSplit(args []string) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl split - Show packet boundaries of a word stream

Usage:
  umpctl split [flags] <word>...

Flags:
`)
		fs.PrintDefaults()
	}
	attach := fs.Bool("attach", true, "Join a leading jitter-reduction word to the packet it precedes")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: input words required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunSplit(strings.Join(fs.Args(), " "), *attach, os.Stdout); err != nil {
		fatal(err)
	}
}

func runShapes(args []string) {
	fs := flag.NewFlagSet("shapes", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl shapes - List message families and shapes

Usage:
  umpctl shapes [flags] [family]

Flags:
`)
		fs.PrintDefaults()
	}
	resolve := configFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := resolve()
	if err := commands.RunShapes(strings.Join(fs.Args(), " "), cfg.Output, os.Stdout); err != nil {
		fatal(err)
	}
}

func runConsole(args []string) {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl console - Interactive decoder

Usage:
  umpctl console [flags]

Flags:
`)
		fs.PrintDefaults()
	}
	resolve := configFlags(fs)
	prompt := fs.String("prompt", "", "Prompt string")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := resolve()
	cfg.Override(commands.Config{Prompt: *prompt})

	console, err := commands.NewConsole(cfg, nil)
	if err != nil {
		fatal(err)
	}
	// Log output goes through readline to avoid interfering with input.
	session, err := commands.NewSession(cfg, console.Stdout())
	if err != nil {
		fatal(err)
	}
	defer session.Close()
	console.SetSession(session)

	console.Run()
}

func runLog(args []string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, logUsage)
		os.Exit(1)
	}
	switch args[0] {
	case "view":
		runView(args[1:])
	case "export":
		runExport(args[1:])
	case "filter":
		runFilter(args[1:])
	case "stats":
		runStats(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown log command: %s\n", args[0])
		fmt.Fprint(os.Stderr, logUsage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl log view - View log file in human-readable format

Usage:
  umpctl log view [flags] <file.ulog>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (stream, dispatch, shape)")
	direction := fs.String("direction", "", "Filter by direction (decode, encode)")
	category := fs.String("category", "", "Filter by category (packet, message, error)")
	family := fs.String("family", "", "Filter by message family")
	shape := fs.String("shape", "", "Filter by shape name")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := commands.ViewFilter{Family: *family, Shape: *shape}

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fatal(err)
		}
		filter.Layer = &l
	}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fatal(err)
		}
		filter.Direction = &d
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fatal(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl log export - Export log file to JSON or CSV format

Usage:
  umpctl log export [flags] <file.ulog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fatal(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl log filter - Filter log file and write to new file

Usage:
  umpctl log filter [flags] <file.ulog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	sessionID := fs.String("session-id", "", "Filter by session ID")
	family := fs.String("family", "", "Filter by message family")
	shape := fs.String("shape", "", "Filter by shape name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	layer := fs.String("layer", "", "Filter by layer (stream, dispatch, shape)")
	direction := fs.String("direction", "", "Filter by direction (decode, encode)")
	category := fs.String("category", "", "Filter by category (packet, message, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		SessionID: *sessionID,
		Family:    *family,
		Shape:     *shape,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Layer:     *layer,
		Direction: *direction,
		Category:  *category,
	}

	if err := commands.RunFilter(fs.Arg(0), opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `umpctl log stats - Show statistics about the log file

Usage:
  umpctl log stats <file.ulog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fatal(err)
	}
}
