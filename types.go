package goutf8

// CheckOpt bundles stream-checking options.
type CheckOpt struct {
	// MaxIssues stops the check once that many issues have been collected;
	// 0 means unlimited.
	MaxIssues int
	// FailFast stops the check at the first issue.
	FailFast bool
	// OnIssue observes every collected issue as it is found.
	OnIssue func(Issue)
	// OnRune observes every decoded code point together with the position
	// of its first byte and its encoded width in bytes.
	OnRune func(r rune, pos Position, size int)
}

// Report summarizes a completed check.
type Report struct {
	Bytes  int64  // Total bytes fed.
	Runes  int64  // Code points successfully decoded.
	Issues Issues // Collected diagnostics, capped by MaxIssues.
}

// Valid reports whether the stream decoded without a single issue.
func (r Report) Valid() bool { return len(r.Issues) == 0 }

// Err returns the collected Issues as an error, or nil for a valid stream.
func (r Report) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return r.Issues
}
