package cli

import (
	"tala/internal/logging"
	"tala/internal/runconf"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	rconf      *runconf.Config
)

var rootCmd = &cobra.Command{
	Use:   "tala",
	Short: "Synchronization map converter and fine tuning tool",
	Long: `Tala manages synchronization maps: collections of text fragments,
each annotated with a begin/end time interval.

It converts sync maps between formats (srt, vtt, json, txt, csv, tsv,
ssv, smil) and generates a self-contained HTML page for manually fine
tuning the time alignment against the audio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		if configPath != "" {
			cfg, err := runconf.Load(configPath)
			if err != nil {
				return err
			}
			rconf = cfg
		} else {
			rconf = runconf.Default()
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Path to a YAML run configuration file")
}
