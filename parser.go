package goutf8

// Scalar-value boundaries enforced when a sequence completes.
const (
	min2 = 0x80    // smallest code point that needs two bytes
	min3 = 0x800   // smallest code point that needs three bytes
	min4 = 0x10000 // smallest code point that needs four bytes

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	maxScalar = 0x10FFFF
)

// Parser decodes a UTF-8 byte stream incrementally, one byte per Push call.
// Between calls it retains only the partially assembled code point, so it
// suits inputs that arrive a byte at a time with nothing buffered.
//
// The zero value is a ready Parser sitting at a sequence boundary. A Parser
// is a small value type; it holds no references and Push never allocates.
// Instances are not safe for concurrent use; give each stream its own.
type Parser struct {
	acc   uint32 // code-point bits accumulated so far
	need  uint8  // continuation bytes still expected; 0 when idle
	width uint8  // declared length of the current sequence (2..4)
}

// NewParser returns an idle Parser. Equivalent to declaring a zero value.
func NewParser() Parser { return Parser{} }

// Push consumes exactly one byte. When b completes a code point, the scalar
// value is returned with ok=true. ok=false with a nil error means b was
// accepted but the sequence needs more bytes.
//
// On error the accumulated sequence is discarded and the Parser is idle
// again, so decoding can resume at the next byte. The offending byte is
// consumed; it is never re-examined as the start of a new sequence.
func (p *Parser) Push(b byte) (rune, bool, error) {
	if p.need > 0 {
		return p.pushContinuation(b)
	}
	switch k := Classify(b); k {
	case KindASCII:
		return rune(b), true, nil
	case KindLead2, KindLead3, KindLead4:
		p.acc = k.Payload(b)
		p.width = uint8(k.Width())
		p.need = p.width - 1
		return 0, false, nil
	case KindContinuation:
		return 0, false, ErrUnexpectedContinuationByte
	default:
		return 0, false, ErrInvalidLeadByte
	}
}

func (p *Parser) pushContinuation(b byte) (rune, bool, error) {
	if b < contMin || b > contMax {
		p.reset()
		return 0, false, ErrIncompleteSequence
	}
	p.acc = p.acc<<6 | uint32(b&contMask)
	p.need--
	if p.need > 0 {
		return 0, false, nil
	}
	return p.complete()
}

// complete validates the assembled code point after the last continuation
// byte has been folded in. Checks run in a fixed order: overlong form,
// surrogate range, scalar range.
func (p *Parser) complete() (rune, bool, error) {
	acc, width := p.acc, p.width
	p.reset()
	switch {
	case acc < minScalar(width):
		return 0, false, ErrOverlongEncoding
	case acc >= surrogateMin && acc <= surrogateMax:
		return 0, false, ErrEncodedSurrogate
	case acc > maxScalar:
		return 0, false, ErrCodePointOutOfRange
	}
	return rune(acc), true, nil
}

// minScalar returns the smallest code point a sequence of the given width
// may legitimately encode.
func minScalar(width uint8) uint32 {
	switch width {
	case 2:
		return min2
	case 3:
		return min3
	default:
		return min4
	}
}

// Reset discards any partially accumulated sequence and returns the Parser
// to a sequence boundary. Resetting an idle Parser is a no-op.
func (p *Parser) Reset() { p.reset() }

func (p *Parser) reset() {
	p.acc = 0
	p.need = 0
	p.width = 0
}

// Pending reports how many continuation bytes the Parser still expects.
// Zero means the Parser sits at a sequence boundary; a nonzero value at end
// of input means the stream was truncated mid-sequence.
func (p *Parser) Pending() int { return int(p.need) }
