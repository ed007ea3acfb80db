package cli

import (
	"fmt"

	"tala/internal/syncmap"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [input_file]",
	Short: "Print the JSON projection of a sync map",
	Long: `Read a synchronization map and print its canonical JSON projection
to standard output.

Examples:
  tala inspect map.srt
  tala inspect map.csv --input-format csv`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		StringP("input-format", "i", "", "Input format (default: inferred from extension)")
	inspectCmd.Flags().
		StringP("language", "l", "", "Overwrite the language of every fragment")
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	inputFormatFlag, _ := cmd.Flags().GetString("input-format")
	lang, _ := cmd.Flags().GetString("language")

	inputFormat, err := resolveFormat(inputFormatFlag, inputPath)
	if err != nil {
		return err
	}
	params, err := buildParameters(lang, "", "", "")
	if err != nil {
		return err
	}

	sm := syncmap.New(rconf, logger)
	if err := sm.Read(inputFormat, inputPath, params); err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), sm.JSONString())
	return nil
}
