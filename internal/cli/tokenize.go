package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenizeFormat string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>...",
	Short: "Tokenize interchanges and print their structure",
	Long: `Tokenizes each file and prints the interchange as JSON, YAML or as
an indented tree. Use - to read standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringVarP(&tokenizeFormat, "format", "f", "", "output format (json, yaml, tree); overrides the config file")
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format := cfg.Output.Format
	if tokenizeFormat != "" {
		format = tokenizeFormat
	}
	switch format {
	case formatJSON, formatYAML, formatTree:
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	for _, path := range args {
		ic, err := tokenizeFile(cmd, path)
		if err != nil {
			return err
		}

		name := ""
		if len(args) > 1 {
			name = path
		}
		switch format {
		case formatJSON:
			if err := writeJSON(cmd.OutOrStdout(), toDoc(name, ic), cfg.Output.Indent); err != nil {
				return err
			}
		case formatYAML:
			if err := writeYAML(cmd.OutOrStdout(), toDoc(name, ic), cfg.Output.Indent); err != nil {
				return err
			}
		case formatTree:
			writeTree(cmd.OutOrStdout(), name, ic)
		}
	}
	return nil
}
