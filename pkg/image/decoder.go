package image

import (
	"errors"
	"fmt"
	"stegano/internal/bits"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	"stegano/pkg/model"
	"time"
)

var (
	ErrNothingHidden = errors.New("nothing hidden in this image, or the password is wrong")
)

// Decoder recovers a message hidden by Encoder. It walks the pixels in the same order, collecting 3 LSBs per pixel
// until it reads a terminator that ends a ciphertext which decrypts with the supplied password.
type Decoder struct {
	image  Canvas
	cipher Cipher
	config config.ImageDecodeConfig
	stats  model.DecodeStats
}

func NewImageDecoder(img Canvas, iConfig config.ImageDecodeConfig) (*Decoder, error) {
	iConfig.PopulateUnsetConfigVars()
	aesCipher, err := cipher.NewAES(iConfig.IVMode)
	if err != nil {
		return nil, err
	}
	return NewImageDecoderWithCipher(img, aesCipher, iConfig), nil
}

func NewImageDecoderWithCipher(img Canvas, c Cipher, iConfig config.ImageDecodeConfig) *Decoder {
	iConfig.PopulateUnsetConfigVars()
	return &Decoder{
		image:  img,
		cipher: c,
		config: iConfig,
	}
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// Decode returns the message hidden in the image. It never returns a partial message: if the image runs out before
// a valid end of message is found, ErrNothingHidden is returned, wrapping the last decryption error if any.
// A wrong password therefore normally surfaces as ErrNothingHidden rather than as cipher.ErrDecrypt.
func (d *Decoder) Decode(password string) (string, error) {
	d.stats = model.DecodeStats{}
	if !bits.IsSingleByte(password) {
		return "", ErrPasswordNotSingleByte
	}

	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	plaintext, err := d.decodeMessage(password)
	if err != nil {
		return "", err
	}
	d.stats.DecodedBytes = len(plaintext)
	return string(plaintext), nil
}

func (d *Decoder) decodeMessage(password string) ([]byte, error) {
	cursor := NewCursor(d.image.Bounds())
	if !cursor.Valid() {
		return nil, ErrNothingHidden
	}

	var message []byte
	var lastCipherErr error
	acc := newByteAccumulator()
	for {
		triplet := d.readBitsAt(cursor)
		d.stats.PixelsVisited++

		if acc.Complete() {
			b, err := acc.Byte()
			if err != nil {
				return nil, err
			}
			plaintext, found, err := d.endOfMessage(b, message, password)
			if found {
				return plaintext, nil
			} else if err != nil {
				lastCipherErr = err
			}
			message = append(message, b.Value())
		}
		acc.Push(triplet)

		if cursor.Advance() != nil {
			break
		}
	}

	// The last pixel of the image may have completed the terminator
	if acc.Complete() {
		b, err := acc.Byte()
		if err != nil {
			return nil, err
		}
		plaintext, found, err := d.endOfMessage(b, message, password)
		if found {
			return plaintext, nil
		} else if err != nil {
			lastCipherErr = err
		}
	}

	if lastCipherErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNothingHidden, lastCipherErr)
	}
	return nil, ErrNothingHidden
}

// endOfMessage reports whether b terminates message. A terminator byte is only accepted where a ciphertext can end,
// and only if the message decrypts: a ciphertext byte that happens to equal the terminator is kept as data and
// decoding carries on. Whether an empty ciphertext is valid is up to the cipher, AES rejects it.
func (d *Decoder) endOfMessage(b bits.Byte, message []byte, password string) (plaintext []byte, found bool, err error) {
	if b.Value() != d.config.Terminator || len(message)%d.config.CiphertextAlignment != 0 {
		return nil, false, nil
	}
	plaintext, err = d.cipher.Decrypt(message, password)
	if err != nil {
		return nil, false, err
	}
	return plaintext, true, nil
}

func (d *Decoder) readBitsAt(cursor *Cursor) (triplet [channelsToWrite]bool) {
	origin := d.image.Bounds().Min
	pixel := d.image.NRGBAAt(origin.X+cursor.X, origin.Y+cursor.Y)
	for i, channel := range pixelChannels(&pixel) {
		triplet[i] = bits.NewByte(*channel).LSB()
	}
	return triplet
}
