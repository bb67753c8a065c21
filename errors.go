package goutf8

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goutf8/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidLeadByte            = "invalid_lead_byte"
	CodeUnexpectedContinuationByte = "unexpected_continuation_byte"
	CodeIncompleteSequence         = "incomplete_sequence"
	CodeOverlongEncoding           = "overlong_encoding"
	CodeEncodedSurrogate           = "encoded_surrogate"
	CodeCodePointOutOfRange        = "code_point_out_of_range"
	// Stream-level diagnostics (raised by Checker.Finish, never by Parser.Push)
	CodeTruncatedStream = "truncated_stream"
)

// ParseError is the error type returned by Parser.Push. One value per code
// is pre-allocated below, so the error path of Push performs no allocation
// and callers can compare with errors.Is.
type ParseError struct {
	Code string // One of the codes listed above.
}

// Error resolves the message through the i18n catalog so language switching
// applies to Push errors as well.
func (e *ParseError) Error() string { return i18n.T(e.Code, nil) }

var (
	// ErrInvalidLeadByte reports a byte that cannot start a sequence
	// (0xC0, 0xC1 or 0xF5..0xFF) seen at a sequence boundary.
	ErrInvalidLeadByte = &ParseError{Code: CodeInvalidLeadByte}
	// ErrUnexpectedContinuationByte reports a continuation byte seen at a
	// sequence boundary.
	ErrUnexpectedContinuationByte = &ParseError{Code: CodeUnexpectedContinuationByte}
	// ErrIncompleteSequence reports a multi-byte sequence aborted by a
	// non-continuation byte. The aborting byte is consumed.
	ErrIncompleteSequence = &ParseError{Code: CodeIncompleteSequence}
	// ErrOverlongEncoding reports a completed sequence whose code point has
	// a shorter canonical encoding.
	ErrOverlongEncoding = &ParseError{Code: CodeOverlongEncoding}
	// ErrEncodedSurrogate reports a completed sequence that decodes into
	// the surrogate range U+D800..U+DFFF.
	ErrEncodedSurrogate = &ParseError{Code: CodeEncodedSurrogate}
	// ErrCodePointOutOfRange reports a completed sequence that decodes
	// past U+10FFFF.
	ErrCodePointOutOfRange = &ParseError{Code: CodeCodePointOutOfRange}
)

// AsParseError extracts a *ParseError from an error using errors.As
// internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Issue represents a single diagnostic found in a byte stream.
type Issue struct {
	Offset  int64  // Byte offset of the offending byte (0-based).
	Line    int    // 1-based line of the offending byte.
	Column  int    // 1-based column of the offending byte.
	Byte    byte   // The byte that triggered the issue; zero for stream-level issues.
	Code    string // One of the codes listed above.
	Message string
}

// Issues is a collection of stream diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_lead_byte at offset 12
		fmt.Fprintf(b, "%s at offset %d", it.Code, it.Offset)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
