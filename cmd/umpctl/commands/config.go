// Package commands implements the umpctl CLI commands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ump-protocol/ump-go/pkg/log"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds umpctl settings. It is read from an optional YAML file and
// then overridden by command-line flags.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	ProtocolLog string `yaml:"protocol_log"`
	Output      string `yaml:"output"`
	Prompt      string `yaml:"prompt"`
}

// DefaultConfig returns the settings used when neither file nor flags set a
// value.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Output:   OutputText,
		Prompt:   "ump> ",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Override copies every non-empty value of o into c.
func (c *Config) Override(o Config) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.ProtocolLog != "" {
		c.ProtocolLog = o.ProtocolLog
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Prompt != "" {
		c.Prompt = o.Prompt
	}
}

// Validate checks the output format and log level.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("invalid output: %s (must be text or yaml)", c.Output)
	}
	_, err := ParseLogLevel(c.LogLevel)
	return err
}

// ParseLogLevel parses a log level name (case-insensitive).
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// Session is the logging set up for one command run.
type Session struct {
	Slog   *slog.Logger
	Events log.Logger
}

// NewSession builds an slog text handler at the configured level writing to
// w. Codec events go to the protocol log file when one is configured, and
// to slog at debug level.
func NewSession(cfg Config, w io.Writer) (*Session, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
	var loggers []log.Logger
	if level <= slog.LevelDebug {
		loggers = append(loggers, log.NewSlogAdapter(s.Slog))
	}
	if cfg.ProtocolLog != "" {
		fl, err := log.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open protocol log: %w", err)
		}
		loggers = append(loggers, fl)
		s.Slog.Info("protocol logging enabled", "path", cfg.ProtocolLog)
	}
	s.Events = log.Combine(loggers...)
	return s, nil
}

// Close flushes the protocol log.
func (s *Session) Close() error {
	if c, ok := s.Events.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
