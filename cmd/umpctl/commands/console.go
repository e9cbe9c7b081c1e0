package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Console is the interactive decoder.
type Console struct {
	rl      *readline.Instance
	out     io.Writer
	session *Session
	opts    DecodeOptions
	attach  bool
}

// NewConsole creates a console reading lines with the configured prompt.
func NewConsole(cfg Config, session *Session) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("words"),
			readline.PcItem("bytes"),
			readline.PcItem("split"),
			readline.PcItem("shapes"),
			readline.PcItem("output", readline.PcItem(OutputText), readline.PcItem(OutputYAML)),
			readline.PcItem("absent"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	c := newConsole(rl.Stdout(), session, DecodeOptions{Output: cfg.Output, Source: "console"})
	c.rl = rl
	return c, nil
}

func newConsole(out io.Writer, session *Session, opts DecodeOptions) *Console {
	return &Console{out: out, session: session, opts: opts, attach: true}
}

// SetSession sets the logging used by decode commands.
func (c *Console) SetSession(s *Session) {
	c.session = s
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.out
}

// Run reads lines until quit or EOF.
func (c *Console) Run() {
	defer c.rl.Close()

	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return
		}
		if !c.Execute(line) {
			return
		}
	}
}

// Execute runs one console line. It returns false when the console should
// exit. A line that starts with a number is decoded as words.
func (c *Console) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	var err error
	switch cmd {
	case "help", "?":
		c.printHelp()

	case "words", "w", "decode", "d":
		err = RunDecode(rest, c.opts, c.session, c.out)

	case "bytes", "b":
		err = RunDecodeBytes(rest, c.opts, c.session, c.out)

	case "split", "s":
		err = RunSplit(rest, c.attach, c.out)

	case "shapes", "ls":
		err = RunShapes(rest, c.opts.Output, c.out)

	case "output", "o":
		err = c.cmdOutput(rest)

	case "absent":
		c.opts.ShowAbsent = !c.opts.ShowAbsent
		fmt.Fprintf(c.out, "Show absent fields: %v\n", c.opts.ShowAbsent)

	case "attach":
		c.attach = !c.attach
		fmt.Fprintf(c.out, "Attach prefix words when splitting: %v\n", c.attach)

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return false

	default:
		if isNumeric(cmd) {
			err = RunDecode(input, c.opts, c.session, c.out)
			break
		}
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return true
}

func (c *Console) cmdOutput(arg string) error {
	switch arg {
	case "":
		fmt.Fprintf(c.out, "Output: %s\n", c.opts.Output)
		return nil
	case OutputText, OutputYAML:
		c.opts.Output = arg
		fmt.Fprintf(c.out, "Output: %s\n", arg)
		return nil
	default:
		return fmt.Errorf("invalid output: %s (must be text or yaml)", arg)
	}
}

func isNumeric(tok string) bool {
	return tok != "" && (tok[0] >= '0' && tok[0] <= '9' || tok[0] == '[')
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `
UMP Console Commands:
  Decoding:
    words <units>      - Decode a word stream (also: any line starting with a number)
    bytes <units>      - Decode one legacy byte-form message
    split <units>      - Show packet boundaries without decoding

  Reference:
    shapes [family]    - List shapes and their fields

  Settings:
    output [text|yaml] - Show or set the output format
    absent             - Toggle printing of absent optional fields
    attach             - Toggle joining prefix words when splitting

    help               - Show this help
    quit               - Exit

`)
}
