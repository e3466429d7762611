package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/coop-care/paid-edifact/internal/charset"
	"github.com/coop-care/paid-edifact/pkg/edifact"
)

var (
	renderComponent  string
	renderElement    string
	renderDecimal    string
	renderEscape     string
	renderTerminator string
	renderNewline    string
	renderUNA        bool
	renderUTF8       bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Re-emit an interchange, optionally with other delimiters",
	Long: `Tokenizes the file and writes it back out. Trailers are regenerated
from the content. The output is encoded according to the UNB syntax
identifier unless --utf8 is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderComponent, "component", "", "component separator")
	renderCmd.Flags().StringVar(&renderElement, "element", "", "element separator")
	renderCmd.Flags().StringVar(&renderDecimal, "decimal", "", "decimal mark (default: the one of the input)")
	renderCmd.Flags().StringVar(&renderEscape, "escape", "", "release character")
	renderCmd.Flags().StringVar(&renderTerminator, "terminator", "", "segment terminator")
	renderCmd.Flags().StringVar(&renderNewline, "newline", "none", "line break after each segment (none, lf, crlf, cr)")
	renderCmd.Flags().BoolVar(&renderUNA, "una", false, "always write a UNA segment")
	renderCmd.Flags().BoolVar(&renderUTF8, "utf8", false, "write UTF-8 regardless of the syntax identifier")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ic, err := tokenizeFile(cmd, args[0])
	if err != nil {
		return err
	}

	opts, err := renderOptions(ic)
	if err != nil {
		return err
	}

	out, err := edifact.RenderWithOptions(ic, opts)
	if err != nil {
		return err
	}

	if !renderUTF8 {
		encoded, err := charset.Encode(ic.SyntaxIdentifier(), string(out))
		switch {
		case err == nil:
			out = encoded
		case errors.Is(err, charset.ErrUnsupported):
			logger.Warn().Str("syntax", ic.SyntaxIdentifier()).Msg("unknown syntax identifier, writing UTF-8")
		default:
			return err
		}
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// renderOptions applies the command flags to the default render options.
func renderOptions(ic *edifact.Interchange) (edifact.RenderOptions, error) {
	opts := edifact.DefaultRenderOptions()
	opts.ServiceStringAdvice = renderUNA
	opts.InterchangeOpen = cfg.Envelope.InterchangeOpen
	opts.InterchangeClose = cfg.Envelope.InterchangeClose
	opts.MessageOpen = cfg.Envelope.MessageOpen
	opts.MessageClose = cfg.Envelope.MessageClose
	if ic.DecimalNotation != 0 {
		opts.Delimiters.Decimal = ic.DecimalNotation
	}

	for _, f := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"component", renderComponent, &opts.Delimiters.Component},
		{"element", renderElement, &opts.Delimiters.Element},
		{"decimal", renderDecimal, &opts.Delimiters.Decimal},
		{"escape", renderEscape, &opts.Delimiters.Escape},
		{"terminator", renderTerminator, &opts.Delimiters.Terminator},
	} {
		if f.value == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(f.value)
		if size != len(f.value) || r == utf8.RuneError {
			return opts, fmt.Errorf("--%s must be a single character, got %q", f.name, f.value)
		}
		*f.dst = r
	}

	switch renderNewline {
	case "none", "":
		opts.Newline = ""
	case "lf":
		opts.Newline = "\n"
	case "crlf":
		opts.Newline = "\r\n"
	case "cr":
		opts.Newline = "\r"
	default:
		return opts, fmt.Errorf("unknown newline: %s", renderNewline)
	}
	return opts, nil
}
