package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coop-care/paid-edifact/pkg/edifact"
)

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// readInput returns the raw bytes of a file or of standard input.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// tokenizeFile reads and tokenizes one interchange with the configured options.
func tokenizeFile(cmd *cobra.Command, path string) (*edifact.Interchange, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	ic, err := edifact.TokenizeBytesWithOptions(data, cfg.Options())
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("interchange rejected")
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info().
		Str("file", path).
		Str("syntax", ic.SyntaxIdentifier()).
		Str("reference", ic.ControlReference()).
		Int("messages", len(ic.Messages)).
		Int("segments", segmentCount(ic)).
		Msg("interchange tokenized")
	return ic, nil
}

// segmentCount counts the segments inside messages.
func segmentCount(ic *edifact.Interchange) int {
	n := 0
	for _, m := range ic.Messages {
		n += len(m.Segments)
	}
	return n
}
