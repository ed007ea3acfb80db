package cli

import (
	"fmt"

	"tala/internal/syncmap"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input_file] [output_file]",
	Short: "Convert a sync map between formats",
	Long: `Convert a synchronization map from one format to another.

Input and output formats default to the file extensions; override them
with --input-format and --output-format. With --language, every
fragment's language is overwritten after reading, regardless of what
the input carried.

SMIL output requires the audio and page references, from flags or
from the run configuration file.

Examples:
  tala convert map.srt map.vtt
  tala convert map.json map.csv --language en
  tala convert map.srt map.smil --smil-audio-ref audio.mp3 --smil-page-ref page.xhtml`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("input-format", "i", "", "Input format (default: inferred from extension)")
	convertCmd.Flags().
		StringP("output-format", "f", "", "Output format (default: inferred from extension)")
	convertCmd.Flags().
		StringP("language", "l", "", "Overwrite the language of every fragment (e.g., en, es-419)")
	convertCmd.Flags().
		String("smil-audio-ref", "", "Audio reference for SMIL output")
	convertCmd.Flags().
		String("smil-page-ref", "", "Page reference for SMIL output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	inputFormatFlag, _ := cmd.Flags().GetString("input-format")
	outputFormatFlag, _ := cmd.Flags().GetString("output-format")
	lang, _ := cmd.Flags().GetString("language")
	audioRef, _ := cmd.Flags().GetString("smil-audio-ref")
	pageRef, _ := cmd.Flags().GetString("smil-page-ref")

	inputFormat, err := resolveFormat(inputFormatFlag, inputPath)
	if err != nil {
		return err
	}
	outputFormat, err := resolveFormat(outputFormatFlag, outputPath)
	if err != nil {
		return err
	}

	params, err := buildParameters(lang, string(outputFormat), audioRef, pageRef)
	if err != nil {
		return err
	}

	sm := syncmap.New(rconf, logger)
	if err := sm.Read(inputFormat, inputPath, params); err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	logger.Infow("Read sync map",
		"path", inputPath,
		"format", inputFormat,
		"fragments", sm.Len(),
		"single_level", sm.IsSingleLevel(),
	)

	if err := sm.Write(outputFormat, outputPath, params); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	logger.Infow("Wrote sync map",
		"path", outputPath,
		"format", outputFormat,
	)
	return nil
}
