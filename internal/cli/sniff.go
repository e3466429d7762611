package cli

import (
	"github.com/spf13/cobra"

	"github.com/coop-care/paid-edifact/pkg/edifact"
)

// sniffSize is how much of the file the sniff command reads.
const sniffSize = 4096

var (
	sniffJSON bool
	sniffYAML bool
)

var sniffCmd = &cobra.Command{
	Use:   "sniff <file>",
	Short: "Show delimiters and interchange header without tokenizing",
	Args:  cobra.ExactArgs(1),
	RunE:  runSniff,
}

func init() {
	sniffCmd.Flags().BoolVar(&sniffJSON, "json", false, "output as JSON")
	sniffCmd.Flags().BoolVar(&sniffYAML, "yaml", false, "output as YAML")
	sniffCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(sniffCmd)
}

type sniffResult struct {
	ServiceStringAdvice bool   `json:"serviceStringAdvice" yaml:"serviceStringAdvice"`
	Component           string `json:"component" yaml:"component"`
	Element             string `json:"element" yaml:"element"`
	Decimal             string `json:"decimal" yaml:"decimal"`
	Escape              string `json:"escape" yaml:"escape"`
	Terminator          string `json:"terminator" yaml:"terminator"`
	SyntaxIdentifier    string `json:"syntaxIdentifier" yaml:"syntaxIdentifier"`
	SyntaxVersion       string `json:"syntaxVersion" yaml:"syntaxVersion"`
	Sender              string `json:"sender" yaml:"sender"`
	Recipient           string `json:"recipient" yaml:"recipient"`
	ControlReference    string `json:"controlReference" yaml:"controlReference"`
}

func runSniff(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	if len(data) > sniffSize {
		data = data[:sniffSize]
	}

	s := edifact.NewSniffer(string(data))
	if err := s.Err(); err != nil {
		logger.Warn().Err(err).Str("file", args[0]).Msg("malformed service string advice, using default delimiters")
	}
	if _, found := s.Header(); !found {
		logger.Warn().Str("file", args[0]).Msg("no terminated header segment in sample")
	}

	d := s.Delimiters()
	res := sniffResult{
		ServiceStringAdvice: s.HasServiceStringAdvice(),
		Component:           string(d.Component),
		Element:             string(d.Element),
		Decimal:             string(d.Decimal),
		Escape:              string(d.Escape),
		Terminator:          string(d.Terminator),
		SyntaxIdentifier:    s.SyntaxIdentifier(),
		SyntaxVersion:       s.SyntaxVersion(),
		Sender:              s.Sender(),
		Recipient:           s.Recipient(),
		ControlReference:    s.ControlReference(),
	}

	switch {
	case sniffJSON:
		return writeJSON(cmd.OutOrStdout(), res, cfg.Output.Indent)
	case sniffYAML:
		return writeYAML(cmd.OutOrStdout(), res, cfg.Output.Indent)
	}

	cmd.Printf("UNA:               %t\n", res.ServiceStringAdvice)
	cmd.Printf("component:         %q\n", res.Component)
	cmd.Printf("element:           %q\n", res.Element)
	cmd.Printf("decimal:           %q\n", res.Decimal)
	cmd.Printf("escape:            %q\n", res.Escape)
	cmd.Printf("terminator:        %q\n", res.Terminator)
	cmd.Printf("syntax identifier: %s\n", res.SyntaxIdentifier)
	cmd.Printf("syntax version:    %s\n", res.SyntaxVersion)
	cmd.Printf("sender:            %s\n", res.Sender)
	cmd.Printf("recipient:         %s\n", res.Recipient)
	cmd.Printf("control reference: %s\n", res.ControlReference)
	return nil
}
