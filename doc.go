package goutf8

// Package goutf8 provides:
//
// - Incremental, byte-at-a-time UTF-8 decoding via Parser.Push (no buffering, no allocation)
// - Total classification of byte values by their role in the encoding (Classify/ByteKind)
// - A stable error model via pre-allocated ParseError sentinels and positioned Issues
// - Stream auditing via Checker with fail-fast/issue-cap enforcement and event sinks
//
// Design policy:
// - Keep only public APIs in the root package; put report rendering under internal/.
// - Place the CLI under cmd/goutf8 and localized messages under i18n/.
// - The library performs no I/O: callers push bytes in, the CLI owns its read loops.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  var p goutf8.Parser
//  for _, b := range input {
//      r, ok, err := p.Push(b)
//      ...
//  }
//
//  ck := goutf8.NewChecker(goutf8.CheckOpt{FailFast: true})
//  ck.Feed(b) // repeat per byte
//  rep := ck.Finish()
//
