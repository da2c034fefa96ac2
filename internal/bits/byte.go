package bits

import (
	"errors"
	"fmt"
)

const BitsPerByte = 8

var (
	ErrBitSequenceLength = errors.New("bit sequence does not have the length of a byte")
	ErrInvalidBitString  = errors.New("bit string must be made of exactly 8 '0' or '1' characters")
)

// Byte is an 8-bit value with helpers to manipulate its least significant bit and to convert it from and to a
// sequence of bits. Bit sequences are always most significant bit first.
type Byte uint8

func NewByte(value uint8) Byte {
	return Byte(value)
}

// FromBits folds exactly 8 bits into a Byte.
func FromBits(bitSeq []bool) (Byte, error) {
	if len(bitSeq) != BitsPerByte {
		return 0, fmt.Errorf("%w: got %d bits", ErrBitSequenceLength, len(bitSeq))
	}
	return fold(bitSeq), nil
}

// FromBitsPadded folds up to 8 bits into a Byte, as if the missing leading bits were zero.
func FromBitsPadded(bitSeq []bool) (Byte, error) {
	if len(bitSeq) > BitsPerByte {
		return 0, fmt.Errorf("%w: got %d bits", ErrBitSequenceLength, len(bitSeq))
	}
	return fold(bitSeq), nil
}

// ParseByte reads a Byte from its binary representation, e.g. "00011111".
func ParseByte(bitString string) (Byte, error) {
	if len(bitString) != BitsPerByte {
		return 0, ErrInvalidBitString
	}
	var b Byte
	for i := 0; i < len(bitString); i++ {
		switch bitString[i] {
		case '0':
			b <<= 1
		case '1':
			b = b<<1 | 1
		default:
			return 0, ErrInvalidBitString
		}
	}
	return b, nil
}

func fold(bitSeq []bool) Byte {
	var b Byte
	for _, bit := range bitSeq {
		b <<= 1
		if bit {
			b |= 1
		}
	}
	return b
}

func (b Byte) Value() uint8 {
	return uint8(b)
}

// LSB reports whether the least significant bit is set.
func (b Byte) LSB() bool {
	return b&1 == 1
}

func (b *Byte) ClearLSB() {
	*b &^= 1
}

// StoreBit replaces the least significant bit with the supplied bit.
func (b *Byte) StoreBit(bit bool) {
	b.ClearLSB()
	if bit {
		*b |= 1
	}
}

// StoreRandomBit replaces the least significant bit with one drawn from src. Only meant for padding, payload bits
// always go through StoreBit.
func (b *Byte) StoreRandomBit(src RandomSource) {
	b.StoreBit(src.RandomBit())
}

// Bits returns the 8 bits of the Byte, most significant first.
func (b Byte) Bits() []bool {
	bitSeq := make([]bool, BitsPerByte)
	for i := 0; i < BitsPerByte; i++ {
		bitSeq[i] = (b>>(BitsPerByte-1-i))&1 == 1
	}
	return bitSeq
}

func (b Byte) Compare(other Byte) int {
	switch {
	case b < other:
		return -1
	case b > other:
		return 1
	default:
		return 0
	}
}

func (b Byte) String() string {
	return fmt.Sprintf("%08b", uint8(b))
}

// FromBytes flattens raw bytes into a single bit sequence, 8 bits per byte, most significant bit first.
func FromBytes(data []byte) []bool {
	bitSeq := make([]bool, 0, len(data)*BitsPerByte)
	for _, d := range data {
		bitSeq = append(bitSeq, Byte(d).Bits()...)
	}
	return bitSeq
}

// IsSingleByte reports whether every character of s fits in a single byte, i.e. s is plain ASCII.
func IsSingleByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
