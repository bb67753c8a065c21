// Package report renders scan results, decode events and byte
// classifications for cmd/goutf8. It owns the wire form of the CLI output;
// the root package types stay free of serialization concerns.
package report

import (
	"fmt"

	goutf8 "github.com/reoring/goutf8"
)

// Result is the wire form of one scanned input.
type Result struct {
	Input  string  `json:"input"`
	Bytes  int64   `json:"bytes"`
	Runes  int64   `json:"runes"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Issue mirrors goutf8.Issue with stable lowercase keys.
type Issue struct {
	Offset  int64  `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Byte    string `json:"byte,omitempty"` // e.g. "0x80"; empty for stream-level issues
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Event is one entry of a decode dump: either a decoded code point or a
// diagnostic, in stream order.
type Event struct {
	Offset    int64  `json:"offset"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Width     int    `json:"width,omitempty"`
	CodePoint string `json:"codePoint,omitempty"` // e.g. "U+1F384"
	Rune      string `json:"rune,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Classification is the wire form of one row of the classify table.
type Classification struct {
	Byte          string `json:"byte"` // e.g. "0xC3"
	Kind          string `json:"kind"`
	Width         int    `json:"width,omitempty"`
	Continuations int    `json:"continuations,omitempty"`
	Payload       string `json:"payload,omitempty"`
}

// FromReport converts a finished check into its wire form.
func FromReport(input string, rep goutf8.Report) Result {
	return Result{
		Input:  input,
		Bytes:  rep.Bytes,
		Runes:  rep.Runes,
		Valid:  rep.Valid(),
		Issues: FromIssues(rep.Issues),
	}
}

// FromIssues converts library issues into their wire form. Nil stays nil so
// valid results omit the field entirely.
func FromIssues(iss goutf8.Issues) []Issue {
	if len(iss) == 0 {
		return nil
	}
	out := make([]Issue, 0, len(iss))
	for _, it := range iss {
		out = append(out, FromIssue(it))
	}
	return out
}

// FromIssue converts one library issue into its wire form.
func FromIssue(it goutf8.Issue) Issue {
	w := Issue{
		Offset:  it.Offset,
		Line:    it.Line,
		Column:  it.Column,
		Code:    it.Code,
		Message: it.Message,
	}
	if it.Code != goutf8.CodeTruncatedStream {
		w.Byte = hexByte(it.Byte)
	}
	return w
}

// RuneEvent converts a decoded code point into a dump entry. pos is the
// position of the first byte of the sequence.
func RuneEvent(r rune, pos goutf8.Position, size int) Event {
	return Event{
		Offset:    pos.Offset,
		Line:      pos.Line,
		Column:    pos.Column,
		Width:     size,
		CodePoint: fmt.Sprintf("U+%04X", r),
		Rune:      string(r),
	}
}

// IssueEvent converts a diagnostic into a dump entry.
func IssueEvent(it goutf8.Issue) Event {
	return Event{
		Offset:  it.Offset,
		Line:    it.Line,
		Column:  it.Column,
		Issue:   it.Code,
		Message: it.Message,
	}
}

// ClassifyByte builds the classify row for one byte value.
func ClassifyByte(b byte) Classification {
	k := goutf8.Classify(b)
	c := Classification{
		Byte: hexByte(b),
		Kind: k.String(),
	}
	if w := k.Width(); w > 0 {
		c.Width = w
		c.Continuations = k.Continuations()
	}
	if k != goutf8.KindInvalid {
		c.Payload = fmt.Sprintf("0x%02X", k.Payload(b))
	}
	return c
}

func hexByte(b byte) string { return fmt.Sprintf("0x%02X", b) }
