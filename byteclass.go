package goutf8

// Byte-range boundaries of the UTF-8 encoding (RFC 3629).
const (
	asciiMax byte = 0x7F

	contMin byte = 0x80
	contMax byte = 0xBF

	lead2Min byte = 0xC2 // 0xC0 and 0xC1 can only start overlong forms
	lead2Max byte = 0xDF
	lead3Min byte = 0xE0
	lead3Max byte = 0xEF
	lead4Min byte = 0xF0
	lead4Max byte = 0xF4 // 0xF5..0xFF would encode past U+10FFFF
)

// Payload masks selecting the code-point bits a byte contributes.
const (
	contMask  = 0x3F
	lead2Mask = 0x1F
	lead3Mask = 0x0F
	lead4Mask = 0x07
)

// ByteKind classifies a single byte by its role in the UTF-8 encoding.
type ByteKind int

const (
	KindInvalid      ByteKind = iota // Never appears in well-formed UTF-8 (0xC0, 0xC1, 0xF5..0xFF).
	KindASCII                        // Complete one-byte code point (0x00..0x7F).
	KindContinuation                 // Trailing byte (0x80..0xBF); meaningful only mid-sequence.
	KindLead2                        // Starts a two-byte sequence (0xC2..0xDF).
	KindLead3                        // Starts a three-byte sequence (0xE0..0xEF).
	KindLead4                        // Starts a four-byte sequence (0xF0..0xF4).
)

// Classify reports the role of b in the UTF-8 encoding. It is total: every
// byte value maps to exactly one kind, and it never fails.
func Classify(b byte) ByteKind {
	switch {
	case b <= asciiMax:
		return KindASCII
	case b <= contMax:
		return KindContinuation
	case b < lead2Min:
		return KindInvalid
	case b <= lead2Max:
		return KindLead2
	case b <= lead3Max:
		return KindLead3
	case b <= lead4Max:
		return KindLead4
	default:
		return KindInvalid
	}
}

// Width returns the total length in bytes of the sequence a byte of this
// kind introduces: 1 for ASCII, 2..4 for leads, 0 otherwise.
func (k ByteKind) Width() int {
	switch k {
	case KindASCII:
		return 1
	case KindLead2:
		return 2
	case KindLead3:
		return 3
	case KindLead4:
		return 4
	default:
		return 0
	}
}

// Continuations returns how many continuation bytes must follow a lead of
// this kind. Zero for anything that is not a lead.
func (k ByteKind) Continuations() int {
	if w := k.Width(); w > 1 {
		return w - 1
	}
	return 0
}

// Payload extracts the code-point bits b contributes when read as this
// kind: the low six bits of a continuation byte, the bits after the length
// marker of a lead byte, the full value of an ASCII byte. Invalid bytes
// contribute nothing.
func (k ByteKind) Payload(b byte) uint32 {
	switch k {
	case KindASCII:
		return uint32(b)
	case KindContinuation:
		return uint32(b & contMask)
	case KindLead2:
		return uint32(b & lead2Mask)
	case KindLead3:
		return uint32(b & lead3Mask)
	case KindLead4:
		return uint32(b & lead4Mask)
	default:
		return 0
	}
}

// String names the kind for diagnostics and the classify table output.
func (k ByteKind) String() string {
	switch k {
	case KindASCII:
		return "ascii"
	case KindContinuation:
		return "continuation"
	case KindLead2:
		return "lead2"
	case KindLead3:
		return "lead3"
	case KindLead4:
		return "lead4"
	default:
		return "invalid"
	}
}
