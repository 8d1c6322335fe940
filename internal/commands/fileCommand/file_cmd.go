package filecommand

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/redjax/hexify/internal/config"
	encodeservice "github.com/redjax/hexify/internal/services/encodeService"
	convert "github.com/redjax/hexify/internal/utils/convert"
	pathutil "github.com/redjax/hexify/internal/utils/path"
	"github.com/redjax/hexify/internal/utils/spinner"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

// NewFileCommand returns the 'file' command, which writes the escaped-hex
// rendering of a file next to it.
func NewFileCommand(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [input]",
		Short: "Encode a file's bytes as escaped hex (\\xHH) text.",
		Long: `Reads the input file and writes every byte as a \xHH token to a new file.

The output name is the input name with its last extension removed and the
suffix (default _HEX) appended, e.g. sample.proof -> sample_HEX. An existing
output file is replaced.

The input path can also come from the config file or HEXIFY_INPUT.

Examples:
  hexify file sample.proof
  hexify file sample.proof -o sample.txt
  hexify file --suffix .hex --verbose
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags(), *configFile)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().String("input", "", "input file (default \""+config.DefaultInput+"\")")
	cmd.Flags().StringP("output", "o", "", "output file (default: derived from input)")
	cmd.Flags().String("suffix", encodeservice.DefaultSuffix, "suffix appended to the stripped input name")
	cmd.Flags().BoolP("verbose", "v", false, "echo the raw input bytes to stderr")
	cmd.Flags().Bool("quiet", false, "do not print the summary")
	cmd.Flags().Int("buffer-size", encodeservice.DefaultBufferSize, "read buffer size in bytes")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	input, err := pathutil.ExpandPath(cfg.Input)
	if err != nil {
		return err
	}

	opts := []encodeservice.FileOption{
		encodeservice.WithSuffix(cfg.Suffix),
		encodeservice.WithBufferSize(cfg.BufferSize),
		encodeservice.WithLogger(slog.Default()),
	}
	if cfg.Output != "" {
		output, err := pathutil.ExpandPath(cfg.Output)
		if err != nil {
			return err
		}
		opts = append(opts, encodeservice.WithOutputPath(output))
	}
	if cfg.Verbose {
		opts = append(opts, encodeservice.WithEcho(cmd.ErrOrStderr()))
	}

	// The spinner would interleave with the echoed bytes.
	stop := func() {}
	if !cfg.Quiet && !cfg.Verbose {
		stop = spinner.StartSpinner("Encoding " + input)
	}

	res, err := encodeservice.EncodeFile(cmd.Context(), input, opts...)
	stop()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if !cfg.Quiet {
		printSummary(cmd.OutOrStdout(), res)
	}

	return nil
}

func printSummary(w io.Writer, res *encodeservice.FileResult) {
	fmt.Fprintln(w, successStyle.Render("Encoded")+" "+pathStyle.Render(res.OutputPath))
	fmt.Fprint(w, renderSummary(res))
}

func renderSummary(res *encodeservice.FileResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Path", "Bytes", "Size"})
	t.AppendRow(table.Row{"Input", res.InputPath, res.BytesRead, convert.BytesToHumanReadable(uint64(res.BytesRead))})
	t.AppendRow(table.Row{"Output", res.OutputPath, res.BytesWritten, convert.BytesToHumanReadable(uint64(res.BytesWritten))})

	return t.Render() + "\n"
}
