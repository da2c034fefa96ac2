package image

import (
	"stegano/internal/bits"
)

// byteAccumulator rebuilds bytes from the 3 bit triplets stored in each pixel. Since 3 does not divide 8, the bits
// of a pixel can straddle two bytes: the ones that belong to the next byte wait in the spillover until the current
// byte has been consumed. The pattern repeats every 8 pixels (3 bytes).
//
// The accumulator is either filling (0 to 7 bits) or complete (8 bits). A complete byte must be consumed with Byte
// before the next Push, which starts the next byte from the spillover.
type byteAccumulator struct {
	bits      []bool
	spillover []bool
}

func newByteAccumulator() *byteAccumulator {
	return &byteAccumulator{
		bits:      make([]bool, 0, bits.BitsPerByte),
		spillover: make([]bool, 0, channelsToWrite-1),
	}
}

func (a *byteAccumulator) Filled() int {
	return len(a.bits)
}

func (a *byteAccumulator) Complete() bool {
	return len(a.bits) == bits.BitsPerByte
}

func (a *byteAccumulator) Byte() (bits.Byte, error) {
	return bits.FromBits(a.bits)
}

func (a *byteAccumulator) Push(triplet [channelsToWrite]bool) {
	switch len(a.bits) {
	case bits.BitsPerByte:
		a.bits = append(a.bits[:0], a.spillover...)
		a.spillover = a.spillover[:0]
		a.bits = append(a.bits, triplet[:]...)
	case 6:
		a.bits = append(a.bits, triplet[0], triplet[1])
		a.spillover = append(a.spillover, triplet[2])
	case 7:
		a.bits = append(a.bits, triplet[0])
		a.spillover = append(a.spillover, triplet[1], triplet[2])
	default:
		a.bits = append(a.bits, triplet[:]...)
	}
}
