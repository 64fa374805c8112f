package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/koki-develop/aart/internal/aart"
	"github.com/koki-develop/aart/internal/ui"
	"github.com/spf13/cobra"
)

type flags struct {
	out     string
	letters string
	size    float64
	width   uint
	print   bool
	view    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	defaults := aart.DefaultOptions()
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "aart <image>",
		Short:        "Convert image to ascii art.",
		Version:      "1.0",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				aart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
				defer aart.SetLogger(nil)
			}

			opts := defaults
			opts.Input = args[0]
			opts.Output = f.out
			opts.Letters = f.letters
			opts.Size = f.size
			opts.Width = f.width

			var (
				res *aart.Result
				err error
			)
			if f.view {
				res, err = ui.Start(&ui.Option{Options: opts})
			} else {
				res, err = aart.Generate(opts)
			}
			if err != nil {
				return err
			}
			if res == nil {
				return ui.ErrCanceled
			}

			out := cmd.OutOrStdout()
			if f.print {
				printGrid(out, res.Grid)
			}
			fmt.Fprintf(out, "Generated %s\n", color.GreenString(res.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.out, "out", "o", defaults.Output, "output file name, \".jpg\" is appended")
	cmd.Flags().StringVarP(&f.letters, "letters", "l", defaults.Letters, "letters used on the output file, darkest first")
	cmd.Flags().Float64VarP(&f.size, "size", "s", defaults.Size, "font size")
	cmd.Flags().UintVarP(&f.width, "width", "w", defaults.Width, fmt.Sprintf("letters per row (1-%d)", aart.MaxWidth))
	cmd.Flags().BoolVarP(&f.print, "print", "p", false, "print the letters to stdout")
	cmd.Flags().BoolVar(&f.view, "view", false, "show the letters in an interactive viewer")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log each step to stderr")

	return cmd
}

func printGrid(w io.Writer, grid []string) {
	for _, line := range grid {
		fmt.Fprintln(w, line)
	}
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
