package goutf8_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	goutf8 "github.com/reoring/goutf8"
)

// ---- Helpers ----

func asciiInput() []byte {
	return []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 64))
}

func mixedInput() []byte {
	return []byte(strings.Repeat("héllo, 世界 🎄 καλημέρα\n", 64))
}

// damagedInput interleaves well-formed text with the common breakage
// patterns: stray continuations, invalid leads, aborted and truncated
// sequences.
func damagedInput() []byte {
	chunk := []byte("ok \xC3\xA9 ")
	bad := []byte{0x80, 0xFF, 0xE2, 0x41, 0xF0, 0x9F, 0x8E}
	var out []byte
	for i := 0; i < 64; i++ {
		out = append(out, chunk...)
		out = append(out, bad...)
	}
	return out
}

// ---- Push parser ----

func Benchmark_Push_ASCII(b *testing.B) {
	data := asciiInput()
	var p goutf8.Parser
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runes := 0
		for _, c := range data {
			_, ok, err := p.Push(c)
			if err != nil {
				b.Fatal(err)
			}
			if ok {
				runes++
			}
		}
		if runes == 0 {
			b.Fatal("no runes decoded")
		}
	}
}

func Benchmark_Push_Mixed(b *testing.B) {
	data := mixedInput()
	var p goutf8.Parser
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runes := 0
		for _, c := range data {
			_, ok, err := p.Push(c)
			if err != nil {
				b.Fatal(err)
			}
			if ok {
				runes++
			}
		}
		if runes == 0 {
			b.Fatal("no runes decoded")
		}
	}
}

func Benchmark_Push_Damaged(b *testing.B) {
	data := damagedInput()
	var p goutf8.Parser
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		issues := 0
		for _, c := range data {
			if _, _, err := p.Push(c); err != nil {
				issues++
			}
		}
		p.Reset()
		if issues == 0 {
			b.Fatal("expected issues in damaged input")
		}
	}
}

// ---- Checker (position tracking and issue collection on top of Push) ----

func Benchmark_Checker_Mixed(b *testing.B) {
	data := mixedInput()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ck := goutf8.NewChecker()
		for _, c := range data {
			ck.Feed(c)
		}
		if rep := ck.Finish(); !rep.Valid() {
			b.Fatal("expected a valid stream")
		}
	}
}

func Benchmark_Checker_Damaged(b *testing.B) {
	data := damagedInput()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ck := goutf8.NewChecker()
		for _, c := range data {
			ck.Feed(c)
		}
		if rep := ck.Finish(); rep.Valid() {
			b.Fatal("expected issues in damaged input")
		}
	}
}

// ---- unicode/utf8 baseline (whole-buffer decoding, for comparison) ----

func Benchmark_unicodeUTF8_DecodeRune_ASCII(b *testing.B) {
	data := asciiInput()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runes := 0
		for off := 0; off < len(data); {
			_, size := utf8.DecodeRune(data[off:])
			off += size
			runes++
		}
		if runes == 0 {
			b.Fatal("no runes decoded")
		}
	}
}

func Benchmark_unicodeUTF8_DecodeRune_Mixed(b *testing.B) {
	data := mixedInput()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runes := 0
		for off := 0; off < len(data); {
			_, size := utf8.DecodeRune(data[off:])
			off += size
			runes++
		}
		if runes == 0 {
			b.Fatal("no runes decoded")
		}
	}
}
