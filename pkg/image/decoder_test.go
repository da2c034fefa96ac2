package image

import (
	"errors"
	"image"
	"image/color"
	"stegano/internal/bits"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	"testing"
)

func TestDecodeNothingHidden(t *testing.T) {
	testCases := map[string]*image.NRGBA{
		"even channels": generateUniformImage(100, 100, color.NRGBA{R: 128, G: 64, B: 32, A: 255}),
		"single pixel":  generateUniformImage(1, 1, color.NRGBA{A: 255}),
		"empty":         image.NewNRGBA(image.Rect(0, 0, 0, 0)),
	}
	for name, img := range testCases {
		t.Run(name, func(t *testing.T) {
			decoder, err := NewImageDecoder(img, config.ImageDecodeConfig{})
			if err != nil {
				t.Fatalf("Error creating image decoder: %s", err)
			}
			message, err := decoder.Decode(testPassword)
			if !errors.Is(err, ErrNothingHidden) {
				t.Errorf("Expected %v, got %v", ErrNothingHidden, err)
			}
			if message != "" {
				t.Errorf("Expected no partial message, got %q", message)
			}
		})
	}
}

func TestDecodePaddedImageWithoutTerminator(t *testing.T) {
	img := generateImage(30, 30, false)
	encoder := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false))
	if err := encoder.Encode("hi", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	// Another terminator never shows up in the zero padding
	decoder := NewImageDecoderWithCipher(img, identityCipher{}, config.ImageDecodeConfig{Terminator: '#', CiphertextAlignment: 1})
	if _, err := decoder.Decode(testPassword); !errors.Is(err, ErrNothingHidden) {
		t.Errorf("Expected %v, got %v", ErrNothingHidden, err)
	}
}

func TestDecodeRejectsNonASCIIPassword(t *testing.T) {
	decoder, err := NewImageDecoder(generateImage(10, 10, false), config.ImageDecodeConfig{})
	if err != nil {
		t.Fatalf("Error creating image decoder: %s", err)
	}
	if _, err = decoder.Decode("Pässword"); !errors.Is(err, ErrPasswordNotSingleByte) {
		t.Errorf("Expected %v, got %v", ErrPasswordNotSingleByte, err)
	}
}

func TestDecodeTerminatorOnLastPixel(t *testing.T) {
	img := generateUniformImage(6, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false)).Encode("a", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	message, err := newTestDecoder(img, identityCipher{}).Decode(testPassword)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "a" {
		t.Errorf("Expected %q, got %q", "a", message)
	}
}

func TestDecodeSkipsTerminatorInsideCiphertext(t *testing.T) {
	img := generateImage(20, 20, false)
	c := markerCipher{marker: '!'}
	if err := newTestEncoder(img, c, bits.ConstantSource(false)).Encode("ab~cd~", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	message, err := newTestDecoder(img, c).Decode(testPassword)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "ab~cd~" {
		t.Errorf("Expected %q, got %q", "ab~cd~", message)
	}
}

func TestDecodeTerminatorAlignment(t *testing.T) {
	img := generateImage(20, 20, false)
	if err := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false)).Encode("abc~defg", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	// The terminator after "abc" is not on a 4 byte boundary, the one after "abc~defg" is
	decoder := NewImageDecoderWithCipher(img, identityCipher{}, config.ImageDecodeConfig{CiphertextAlignment: 4})
	message, err := decoder.Decode(testPassword)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "abc~defg" {
		t.Errorf("Expected %q, got %q", "abc~defg", message)
	}

	// Without alignment, the first terminator wins
	message, err = newTestDecoder(img, identityCipher{}).Decode(testPassword)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "abc" {
		t.Errorf("Expected %q, got %q", "abc", message)
	}
}

func TestDecodeReportsCipherError(t *testing.T) {
	img := generateImage(20, 20, false)
	if err := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false)).Encode("message", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	_, err := newTestDecoder(img, failingCipher{}).Decode(testPassword)
	if !errors.Is(err, ErrNothingHidden) || !errors.Is(err, errTestCipher) {
		t.Errorf("Expected %v wrapping %v, got %v", ErrNothingHidden, errTestCipher, err)
	}
}

func TestDecodeWrongPassword(t *testing.T) {
	for _, ivMode := range []cipher.IVMode{cipher.ZeroIV, cipher.RandomIV} {
		t.Run(string(ivMode), func(t *testing.T) {
			img := generateImage(100, 100, false)
			encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{IVMode: ivMode})
			if err != nil {
				t.Fatalf("Error creating image encoder: %s", err)
			}
			if err = encoder.Encode("Hello how is the weather today", testPassword); err != nil {
				t.Fatalf("Error encoding message: %s", err)
			}

			decoder, err := NewImageDecoder(img, config.ImageDecodeConfig{IVMode: ivMode})
			if err != nil {
				t.Fatalf("Error creating image decoder: %s", err)
			}
			message, err := decoder.Decode("NotThePassword")
			if err == nil && message == "Hello how is the weather today" {
				t.Errorf("Expected a wrong password not to reveal the message")
			}
		})
	}
}

func TestDecodeStats(t *testing.T) {
	img := generateImage(10, 10, false)
	if err := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false)).Encode("abc", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	decoder := newTestDecoder(img, identityCipher{})
	if _, err := decoder.Decode(testPassword); err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	// 32 bits end in pixel 10, the terminator is checked when reading pixel 11
	if stats := decoder.Stats(); stats.DecodedBytes != 3 || stats.PixelsVisited != 12 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestDecodeEmptyCiphertext(t *testing.T) {
	img := generateImage(10, 10, false)
	if err := newTestEncoder(img, identityCipher{}, bits.ConstantSource(false)).Encode("", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	// The terminator is the very first byte, the cipher accepts the empty ciphertext before it
	message, err := newTestDecoder(img, identityCipher{}).Decode(testPassword)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "" {
		t.Errorf("Expected an empty message, got %q", message)
	}
}

func TestDecodeWrongPasswordWrapsCipherError(t *testing.T) {
	img := generateImage(10, 10, false)
	if err := newTestEncoder(img, markerCipher{marker: '!'}, bits.ConstantSource(false)).Encode("message", testPassword); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	// A cipher that never accepts the ciphertext stands in for a wrong password
	_, err := newTestDecoder(img, markerCipher{marker: '?'}).Decode(testPassword)
	if !errors.Is(err, ErrNothingHidden) || !errors.Is(err, errTestMarkerMissing) {
		t.Errorf("Expected %v wrapping %v, got %v", ErrNothingHidden, errTestMarkerMissing, err)
	}
}
