package syncmap

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed finetuneas.html
var finetuneasTemplate string

// Ordered literal replacements applied to the template. The
// comment/uncomment marker pairs toggle whole blocks of the template
// between their disabled and enabled forms; keep the order as-is,
// reordering corrupts the generated page.
var finetuneasReplacements = [][2]string{
	{"<!-- TALA_REPLACE_COMMENT_BEGIN -->", "<!-- TALA_REPLACE_COMMENT_BEGIN"},
	{"<!-- TALA_REPLACE_COMMENT_END -->", "TALA_REPLACE_COMMENT_END -->"},
	{"<!-- TALA_REPLACE_UNCOMMENT_BEGIN", "<!-- TALA_REPLACE_UNCOMMENT_BEGIN -->"},
	{"TALA_REPLACE_UNCOMMENT_END -->", "<!-- TALA_REPLACE_UNCOMMENT_END -->"},
	{"// TALA_REPLACE_SHOW_ID", "showID = true;"},
	{"// TALA_REPLACE_ALIGN_TEXT", "alignText = \"left\""},
	{"// TALA_REPLACE_CONTINUOUS_PLAY", "continuousPlay = true;"},
	{"// TALA_REPLACE_TIME_FORMAT", "timeFormatHHMMSSmmm = true;"},
}

const (
	finetuneasReplaceAudioFilePath = "// TALA_REPLACE_AUDIOFILEPATH"
	finetuneasReplaceFragments     = "// TALA_REPLACE_FRAGMENTS"
	finetuneasReplaceOutputFormat  = "// TALA_REPLACE_OUTPUT_FORMAT"
	finetuneasReplaceSMILAudioRef  = "// TALA_REPLACE_SMIL_AUDIOREF"
	finetuneasReplaceSMILPageRef   = "// TALA_REPLACE_SMIL_PAGEREF"
)

// Formats the fine tuning page can export to. Membership here is
// independent of the codec registry.
var finetuneasAllowedFormats = []string{
	"csv",
	"json",
	"smil",
	"srt",
	"ssv",
	"ttml",
	"tsv",
	"txt",
	"vtt",
	"xml",
}

// OutputHTMLForTuning writes a self-contained HTML page for manually
// fine tuning the sync map, embedding the audio file path and the
// JSON projection of the current tree. This operation never goes
// through the codec registry.
func (s *SyncMap) OutputHTMLForTuning(audioFilePath, outputFilePath string, params Parameters) error {
	if !fileCanBeWritten(outputFilePath) {
		return fmt.Errorf("cannot output HTML file %q: %w", outputFilePath, ErrUnwritablePath)
	}

	audioAbsolute, err := filepath.Abs(audioFilePath)
	if err != nil {
		return fmt.Errorf("cannot resolve audio file path %q: %w", audioFilePath, err)
	}
	audioAbsolute = filepath.ToSlash(audioAbsolute)

	text := finetuneasTemplate
	for _, repl := range finetuneasReplacements {
		text = strings.ReplaceAll(text, repl[0], repl[1])
	}
	text = strings.ReplaceAll(
		text,
		finetuneasReplaceAudioFilePath,
		fmt.Sprintf("audioFilePath = %q;", "file://"+audioAbsolute),
	)
	text = strings.ReplaceAll(
		text,
		finetuneasReplaceFragments,
		fmt.Sprintf("fragments = (%s).fragments;", s.JSONString()),
	)

	if outputFormat, ok := params.Get(ParamOutputFormat); ok &&
		slices.Contains(finetuneasAllowedFormats, outputFormat) {
		text = strings.ReplaceAll(
			text,
			finetuneasReplaceOutputFormat,
			fmt.Sprintf("outputFormat = %q;", outputFormat),
		)
		if outputFormat == string(FormatSMIL) {
			if audioRef, ok := params.Get(ParamSMILAudioRef); ok {
				text = strings.ReplaceAll(
					text,
					finetuneasReplaceSMILAudioRef,
					fmt.Sprintf("audioref = %q;", audioRef),
				)
			}
			if pageRef, ok := params.Get(ParamSMILPageRef); ok {
				text = strings.ReplaceAll(
					text,
					finetuneasReplaceSMILPageRef,
					fmt.Sprintf("pageref = %q;", pageRef),
				)
			}
		}
	}

	s.log.Debugw("Writing fine tuning page", "path", outputFilePath)
	if err := os.WriteFile(outputFilePath, []byte(text), 0644); err != nil {
		return fmt.Errorf("cannot output HTML file %q: %w", outputFilePath, ErrUnwritablePath)
	}
	return nil
}
