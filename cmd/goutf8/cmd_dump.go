package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	goutf8 "github.com/reoring/goutf8"
	"github.com/reoring/goutf8/internal/report"
)

func newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print every decode event of a byte stream",
		Long: "Dump feeds the input through the parser and prints one line per\n" +
			"decoded code point or diagnostic, in stream order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, format)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or jsonl)")

	return cmd
}

func runDump(cmd *cobra.Command, args []string, format string) error {
	if format != "text" && format != "jsonl" {
		return fmt.Errorf("unsupported format: %s", format)
	}

	name := "stdin"
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	var line *report.LineEncoder
	if format == "jsonl" {
		line = report.NewLineEncoder(out)
	}

	var encodeErr error
	emit := func(ev report.Event) {
		if encodeErr != nil {
			return
		}
		if line != nil {
			encodeErr = line.Encode(ev)
			return
		}
		encodeErr = report.WriteEvent(out, ev)
	}

	ck := goutf8.NewChecker(goutf8.CheckOpt{
		OnRune:  func(r rune, pos goutf8.Position, size int) { emit(report.RuneEvent(r, pos, size)) },
		OnIssue: func(it goutf8.Issue) { emit(report.IssueEvent(it)) },
	})

	br := bufio.NewReader(in)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		ck.Feed(b)
	}
	rep := ck.Finish()
	if encodeErr != nil {
		return encodeErr
	}

	if format == "text" {
		fmt.Fprintf(out, "%s: %d bytes, %d runes, %d issues\n", name, rep.Bytes, rep.Runes, len(rep.Issues))
	}
	log.Debugf("dump %s done", name)
	return nil
}
