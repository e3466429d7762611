package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/coop-care/paid-edifact/pkg/edifact"
)

// Config is the contents of the optional TOML config file.
type Config struct {
	Envelope EnvelopeConfig `toml:"envelope"`
	Log      LogConfig      `toml:"log"`
	Output   OutputConfig   `toml:"output"`
}

type EnvelopeConfig struct {
	InterchangeOpen  string `toml:"interchange_open"`
	InterchangeClose string `toml:"interchange_close"`
	MessageOpen      string `toml:"message_open"`
	MessageClose     string `toml:"message_close"`
	GroupOpen        string `toml:"group_open"`
	ValidateTrailers bool   `toml:"validate_trailers"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Indent int    `toml:"indent"`
}

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTree = "tree"
)

// Log formats.
const (
	logConsole = "console"
	logJSON    = "json"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	opts := edifact.DefaultOptions()
	return Config{
		Envelope: EnvelopeConfig{
			InterchangeOpen:  opts.InterchangeOpen,
			InterchangeClose: opts.InterchangeClose,
			MessageOpen:      opts.MessageOpen,
			MessageClose:     opts.MessageClose,
			GroupOpen:        opts.GroupOpen,
			ValidateTrailers: opts.ValidateTrailers,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logConsole,
		},
		Output: OutputConfig{
			Format: formatJSON,
			Indent: 2,
		},
	}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Envelope.InterchangeOpen = strings.TrimSpace(c.Envelope.InterchangeOpen)
	c.Envelope.InterchangeClose = strings.TrimSpace(c.Envelope.InterchangeClose)
	c.Envelope.MessageOpen = strings.TrimSpace(c.Envelope.MessageOpen)
	c.Envelope.MessageClose = strings.TrimSpace(c.Envelope.MessageClose)
	c.Envelope.GroupOpen = strings.TrimSpace(c.Envelope.GroupOpen)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
}

// Validate checks the envelope tags and the output and log formats.
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case formatJSON, formatYAML, formatTree:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("negative output indent %d", c.Output.Indent)
	}
	switch c.Log.Format {
	case logConsole, logJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Options converts the envelope section to tokenizer options.
func (c Config) Options() edifact.Options {
	return edifact.Options{
		InterchangeOpen:  c.Envelope.InterchangeOpen,
		InterchangeClose: c.Envelope.InterchangeClose,
		MessageOpen:      c.Envelope.MessageOpen,
		MessageClose:     c.Envelope.MessageClose,
		GroupOpen:        c.Envelope.GroupOpen,
		ValidateTrailers: c.Envelope.ValidateTrailers,
	}
}
