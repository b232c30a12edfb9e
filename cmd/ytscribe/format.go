package main

import (
	"fmt"
	"io"
	"os"

	"github.com/snarg/ytscribe/internal/transcript"
	"github.com/spf13/cobra"
)

type formatFlags struct {
	format     string
	timestamps bool
	title      string
	output     string
}

func newFormatCmd() *cobra.Command {
	var f formatFlags
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Convert pasted transcript text into txt, md, srt or compact form",
		Long: `Reads transcript text from a file (or stdin when no file or "-" is given),
one line per segment with optional [M:SS] stamps, and prints it in the
requested export format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			out := cmd.OutOrStdout()
			if f.output != "" {
				file, err := os.Create(f.output)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			return runFormat(in, out, f)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", transcript.FormatText, "output format: txt, md, srt or compact")
	cmd.Flags().BoolVarP(&f.timestamps, "timestamps", "t", true, "include timestamps (txt and md)")
	cmd.Flags().StringVar(&f.title, "title", "", "heading for markdown output")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func runFormat(in io.Reader, out io.Writer, f formatFlags) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	segs := transcript.ParseManualPaste(string(raw))
	if len(segs) == 0 {
		return fmt.Errorf("no transcript lines in input")
	}
	text, err := transcript.Format(segs, transcript.Options{
		Format:            f.format,
		IncludeTimestamps: f.timestamps,
		Title:             f.title,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
