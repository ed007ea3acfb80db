package cli

import (
	"fmt"

	"tala/internal/syncmap"

	"github.com/spf13/cobra"
)

var finetuneCmd = &cobra.Command{
	Use:   "finetune [input_file] [audio_file] [output_html]",
	Short: "Generate an HTML page for manually fine tuning a sync map",
	Long: `Read a synchronization map and generate a self-contained HTML page
that plays the audio file and lets you adjust fragment timings by hand.

With --output-format, the page offers a download of the adjusted map
in that format. For smil, the audio and page references are embedded
when supplied.

Examples:
  tala finetune map.srt audio.mp3 tuning.html
  tala finetune map.json audio.mp3 tuning.html --output-format srt
  tala finetune map.json audio.mp3 tuning.html -f smil --smil-audio-ref audio.mp3`,
	Args: cobra.ExactArgs(3),
	RunE: runFinetune,
}

func init() {
	rootCmd.AddCommand(finetuneCmd)

	finetuneCmd.Flags().
		StringP("input-format", "i", "", "Input format (default: inferred from extension)")
	finetuneCmd.Flags().
		StringP("output-format", "f", "", "Format offered by the page's download control")
	finetuneCmd.Flags().
		StringP("language", "l", "", "Overwrite the language of every fragment")
	finetuneCmd.Flags().
		String("smil-audio-ref", "", "Audio reference embedded for SMIL download")
	finetuneCmd.Flags().
		String("smil-page-ref", "", "Page reference embedded for SMIL download")
}

func runFinetune(cmd *cobra.Command, args []string) error {
	inputPath, audioPath, outputPath := args[0], args[1], args[2]

	inputFormatFlag, _ := cmd.Flags().GetString("input-format")
	outputFormat, _ := cmd.Flags().GetString("output-format")
	lang, _ := cmd.Flags().GetString("language")
	audioRef, _ := cmd.Flags().GetString("smil-audio-ref")
	pageRef, _ := cmd.Flags().GetString("smil-page-ref")

	inputFormat, err := resolveFormat(inputFormatFlag, inputPath)
	if err != nil {
		return err
	}
	params, err := buildParameters(lang, outputFormat, audioRef, pageRef)
	if err != nil {
		return err
	}

	sm := syncmap.New(rconf, logger)
	if err := sm.Read(inputFormat, inputPath, params); err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	if err := sm.OutputHTMLForTuning(audioPath, outputPath, params); err != nil {
		return fmt.Errorf("failed to generate tuning page: %w", err)
	}
	logger.Infow("Wrote fine tuning page",
		"path", outputPath,
		"fragments", sm.Len(),
	)
	return nil
}
