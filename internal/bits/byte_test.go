package bits

import (
	"errors"
	"testing"
)

func TestByteBitsRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		b, err := FromBits(NewByte(uint8(v)).Bits())
		if err != nil {
			t.Fatalf("Error converting bits of %d back to a byte: %s", v, err)
		}
		if b.Value() != uint8(v) {
			t.Errorf("Expected %d after round trip, got %d", v, b.Value())
		}
	}
}

func TestBits(t *testing.T) {
	expected := []bool{false, false, false, true, true, true, true, true}
	got := NewByte(31).Bits()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Expected bits of 31 to be %v, got %v", expected, got)
		}
	}
}

func TestFromBitsLength(t *testing.T) {
	for _, length := range []int{0, 3, 7, 9} {
		_, err := FromBits(make([]bool, length))
		if !errors.Is(err, ErrBitSequenceLength) {
			t.Errorf("Expected length error for %d bits, got %v", length, err)
		}
	}
}

func TestFromBitsPadded(t *testing.T) {
	b, err := FromBitsPadded([]bool{true, false, true})
	if err != nil {
		t.Fatalf("Error folding short sequence: %s", err)
	}
	if b != 5 {
		t.Errorf("Expected 101 to fold to 5, got %d", b)
	}

	if _, err = FromBitsPadded(make([]bool, 9)); !errors.Is(err, ErrBitSequenceLength) {
		t.Errorf("Expected length error for 9 bits, got %v", err)
	}
}

func TestStoreBit(t *testing.T) {
	b := NewByte(31)

	b.StoreBit(true)
	if b != 31 {
		t.Errorf("Expected 31, got %d", b)
	}
	b.StoreBit(false)
	if b != 30 {
		t.Errorf("Expected 30, got %d", b)
	}
	b.StoreBit(false)
	if b != 30 {
		t.Errorf("Expected 30, got %d", b)
	}
	b.StoreBit(true)
	if b != 31 {
		t.Errorf("Expected 31, got %d", b)
	}
}

func TestStoreRandomBit(t *testing.T) {
	b := NewByte(30)
	b.StoreRandomBit(ConstantSource(true))
	if b != 31 {
		t.Errorf("Expected 31, got %d", b)
	}
	b.StoreRandomBit(ConstantSource(false))
	if b != 30 {
		t.Errorf("Expected 30, got %d", b)
	}

	seen := map[Byte]bool{}
	src := NewSeededRandomSource(42)
	for i := 0; i < 200; i++ {
		rb := NewByte(31)
		rb.StoreRandomBit(src)
		seen[rb] = true
	}
	if len(seen) != 2 || !seen[30] || !seen[31] {
		t.Errorf("Expected random bits to produce both 30 and 31, got %v", seen)
	}
}

func TestSeededRandomSourceIsReproducible(t *testing.T) {
	first, second := NewSeededRandomSource(7), NewSeededRandomSource(7)
	for i := 0; i < 64; i++ {
		if first.RandomBit() != second.RandomBit() {
			t.Fatalf("Seeded sources diverged at bit %d", i)
		}
	}
}

func TestParseByte(t *testing.T) {
	b, err := ParseByte("00011111")
	if err != nil {
		t.Fatalf("Error parsing bit string: %s", err)
	}
	if b != 31 {
		t.Errorf("Expected 31, got %d", b)
	}
	if b.String() != "00011111" {
		t.Errorf("Expected 00011111, got %s", b.String())
	}

	for _, invalid := range []string{"", "0001111", "000111111", "0001111x"} {
		if _, err = ParseByte(invalid); !errors.Is(err, ErrInvalidBitString) {
			t.Errorf("Expected invalid bit string error for %q, got %v", invalid, err)
		}
	}
}

func TestCompare(t *testing.T) {
	if NewByte(1).Compare(NewByte(2)) != -1 || NewByte(2).Compare(NewByte(1)) != 1 || NewByte(9).Compare(NewByte(9)) != 0 {
		t.Errorf("Byte ordering does not follow values")
	}
}

func TestFromBytes(t *testing.T) {
	bitSeq := FromBytes([]byte{31, 31, 31})
	if len(bitSeq) != 24 {
		t.Fatalf("Expected 24 bits, got %d", len(bitSeq))
	}
	for i := 0; i < 3; i++ {
		b, err := FromBits(bitSeq[i*8 : i*8+8])
		if err != nil || b != 31 {
			t.Errorf("Expected byte %d to be 31, got %d (%v)", i, b, err)
		}
	}
}

func TestIsSingleByte(t *testing.T) {
	testCases := map[string]bool{
		"Very nice message":     true,
		"":                      true,
		"Véry ugly méssàge !!!": false,
		"€":                     false,
	}
	for input, expected := range testCases {
		if IsSingleByte(input) != expected {
			t.Errorf("Expected IsSingleByte(%q) to be %v", input, expected)
		}
	}
}
