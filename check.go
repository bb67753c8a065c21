package goutf8

import (
	"github.com/reoring/goutf8/i18n"
)

// Checker audits a UTF-8 byte stream for well-formedness, one byte per Feed
// call. It wraps a Parser, tracks stream position, and turns Push errors
// into positioned Issues. Like the Parser it performs no I/O and keeps no
// buffer; callers own the read loop.
type Checker struct {
	parser    Parser
	pos       Position
	runeStart Position
	issues    Issues
	bytes     int64
	runes     int64
	opt       CheckOpt
	stopped   bool
	finished  bool
	report    Report
}

// NewChecker returns a Checker positioned at the start of a stream. When
// multiple options are given the last one wins.
func NewChecker(opts ...CheckOpt) *Checker {
	var opt CheckOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &Checker{
		pos: Position{Line: 1, Column: 1},
		opt: opt,
	}
}

// Feed consumes one byte of the stream. Decoded code points and issues are
// delivered through the OnRune/OnIssue options; bytes fed after the Checker
// is Done are ignored.
func (c *Checker) Feed(b byte) {
	if c.stopped || c.finished {
		return
	}
	if c.parser.Pending() == 0 {
		c.runeStart = c.pos
	}
	c.bytes++
	r, ok, err := c.parser.Push(b)
	switch {
	case err != nil:
		code := CodeInvalidLeadByte
		if pe, found := AsParseError(err); found {
			code = pe.Code
		}
		c.record(issueAt(code, c.pos, b))
		c.pos.advanceByte(b)
	case ok:
		c.runes++
		size := int(c.pos.Offset-c.runeStart.Offset) + 1
		if c.opt.OnRune != nil {
			c.opt.OnRune(r, c.runeStart, size)
		}
		next := c.runeStart
		next.Advance(r, size)
		c.pos = next
	default:
		c.pos.Offset++
	}
}

// Done reports whether feeding further bytes has no effect: the Checker
// stopped early (fail-fast or issue cap) or was finished.
func (c *Checker) Done() bool { return c.stopped || c.finished }

// Issues returns the diagnostics collected so far.
func (c *Checker) Issues() Issues { return c.issues }

// Position returns the position of the next byte to be fed.
func (c *Checker) Position() Position { return c.pos }

// Finish closes the stream and returns the final Report. A stream that ends
// in the middle of a sequence yields one trailing truncated_stream issue.
// Finish is idempotent: later calls return the same Report.
func (c *Checker) Finish() Report {
	if c.finished {
		return c.report
	}
	c.finished = true
	if c.parser.Pending() > 0 {
		c.record(issueAt(CodeTruncatedStream, c.pos, 0))
		c.parser.Reset()
	}
	c.report = Report{Bytes: c.bytes, Runes: c.runes, Issues: c.issues}
	return c.report
}

func (c *Checker) record(it Issue) {
	if c.opt.OnIssue != nil {
		c.opt.OnIssue(it)
	}
	c.issues = AppendIssues(c.issues, it)
	if c.opt.FailFast || (c.opt.MaxIssues > 0 && len(c.issues) >= c.opt.MaxIssues) {
		c.stopped = true
	}
}

// issueAt creates an Issue at the given position with the message resolved
// through the i18n catalog.
func issueAt(code string, pos Position, b byte) Issue {
	return Issue{
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
		Byte:    b,
		Code:    code,
		Message: i18n.T(code, nil),
	}
}
