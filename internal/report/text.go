package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteResult renders a scan result as human-readable text: one summary
// line, then one indented line per issue.
func WriteResult(w io.Writer, res Result) error {
	status := "ok"
	if !res.Valid {
		status = "invalid"
	}
	if _, err := fmt.Fprintf(w, "%s: %s, %d bytes, %d runes, %d issues\n",
		res.Input, status, res.Bytes, res.Runes, len(res.Issues)); err != nil {
		return err
	}
	for _, it := range res.Issues {
		if err := writeIssueLine(w, it); err != nil {
			return err
		}
	}
	return nil
}

func writeIssueLine(w io.Writer, it Issue) error {
	loc := fmt.Sprintf("line %d column %d (byte offset %d)", it.Line, it.Column, it.Offset)
	if it.Byte != "" {
		_, err := fmt.Fprintf(w, "  %s %s at %s: %s\n", it.Code, it.Byte, loc, it.Message)
		return err
	}
	_, err := fmt.Fprintf(w, "  %s at %s: %s\n", it.Code, loc, it.Message)
	return err
}

// WriteEvent renders one dump entry as a single text line.
func WriteEvent(w io.Writer, ev Event) error {
	if ev.Issue != "" {
		_, err := fmt.Fprintf(w, "%6d  line %d column %d  %s: %s\n",
			ev.Offset, ev.Line, ev.Column, ev.Issue, ev.Message)
		return err
	}
	_, err := fmt.Fprintf(w, "%6d  line %d column %d  width %d  %-8s %q\n",
		ev.Offset, ev.Line, ev.Column, ev.Width, ev.CodePoint, ev.Rune)
	return err
}

// WriteClassification renders one classify row as a single text line.
func WriteClassification(w io.Writer, c Classification) error {
	line := fmt.Sprintf("%s  %-12s", c.Byte, c.Kind)
	if c.Width > 0 {
		line += fmt.Sprintf("  width %d  continuations %d", c.Width, c.Continuations)
	}
	if c.Payload != "" {
		line += fmt.Sprintf("  payload %s", c.Payload)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(line, " "))
	return err
}
