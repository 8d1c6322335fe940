// The root command for the CLI.
// This root 'composes' the subcommands and provides global flags like --config and --debug.
package cmd

import (
	"log/slog"
	"os"

	encodeCommand "github.com/redjax/hexify/internal/commands/encodeCommand"
	fileCommand "github.com/redjax/hexify/internal/commands/fileCommand"
	versionCommand "github.com/redjax/hexify/internal/commands/versionCommand"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   "hexify",
	Short: "Convert files to escaped hex (\\xHH) text.",
	Long: `hexify writes the bytes of a file as a run of \xHH tokens, e.g. for
embedding binary proofs in source code or transaction payloads.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging(debug || os.Getenv("HEXIFY_DEBUG") != "")
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	rootCmd.AddCommand(fileCommand.NewFileCommand(&cfgFile))
	rootCmd.AddCommand(encodeCommand.NewEncodeCommand())
	rootCmd.AddCommand(versionCommand.NewVersionCommand())
}

// initLogging installs the default slog logger on stderr.
func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
