package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errRejected = errors.New("one or more interchanges were rejected")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that interchanges are well formed",
	Long: `Tokenizes each file and reports whether it is accepted. Every file is
checked; the command fails if any file is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rejected := 0
	for _, path := range args {
		if _, err := tokenizeFile(cmd, path); err != nil {
			rejected++
			cmd.Printf("FAIL %v\n", err)
			continue
		}
		cmd.Printf("OK   %s\n", path)
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(args))
	}
	return nil
}
