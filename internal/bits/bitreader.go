package bits

// BitReader hands out bits from a flat bit sequence in order, a few at a time
type BitReader struct {
	bits          []bool
	currentBitIdx int
}

func NewBitReader(bitSeq []bool) *BitReader {
	return &BitReader{
		bits: bitSeq,
	}
}

func NewBitReaderFromBytes(data []byte) *BitReader {
	return NewBitReader(FromBytes(data))
}

func (br *BitReader) BitsLeftToRead() int {
	return len(br.bits) - br.currentBitIdx
}

func (br *BitReader) Len() int {
	return len(br.bits)
}

func (br *BitReader) Reset() {
	br.currentBitIdx = 0
}

// ReadBits returns the next bitsToRead bits, or fewer if the sequence ends first. The returned slice aliases the
// underlying sequence and must not be modified.
func (br *BitReader) ReadBits(bitsToRead int) []bool {
	end := br.currentBitIdx + bitsToRead
	if end > len(br.bits) {
		end = len(br.bits)
	}
	readBits := br.bits[br.currentBitIdx:end]
	br.currentBitIdx = end
	return readBits
}
