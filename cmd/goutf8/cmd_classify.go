package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/goutf8/internal/report"
)

func newClassifyCmd() *cobra.Command {
	var (
		format string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "classify [byte...]",
		Short: "Show how byte values are classified",
		Long: "Classify prints the role each byte value plays in the encoding: its\n" +
			"kind, the sequence width it declares and the payload bits it\n" +
			"contributes. Bytes are given in hex, with or without a 0x prefix.",
		Example: "  goutf8 classify 0x41 c3 ff\n  goutf8 classify --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args, format, all)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or json)")
	cmd.Flags().BoolVar(&all, "all", false, "print the full 256-entry table")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string, format string, all bool) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format: %s", format)
	}
	if !all && len(args) == 0 {
		return fmt.Errorf("give byte values to classify, or --all for the full table")
	}

	var rows []report.Classification
	if all {
		for v := 0; v < 256; v++ {
			rows = append(rows, report.ClassifyByte(byte(v)))
		}
	} else {
		for _, arg := range args {
			b, err := parseByte(arg)
			if err != nil {
				return err
			}
			rows = append(rows, report.ClassifyByte(b))
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return report.NewJSONEncoder(out).Encode(rows)
	}
	for _, row := range rows {
		if err := report.WriteClassification(out, row); err != nil {
			return err
		}
	}
	return nil
}

func parseByte(arg string) (byte, error) {
	s := strings.TrimPrefix(strings.ToLower(arg), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("not a byte value: %s", arg)
	}
	return byte(v), nil
}
