package image

import (
	"errors"
	"image"
	"io"
	"stegano/internal/bits"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	"stegano/pkg/model"
	"time"
)

const (
	MinPasswordLength = 8
)

var (
	ErrMessageNotSingleByte  = errors.New("message must only contain single byte (ASCII) characters")
	ErrPasswordNotSingleByte = errors.New("password must only contain single byte (ASCII) characters")
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters long")
	ErrImageNotBigEnough     = errors.New("supplied image not big enough to contain the message, either choose a bigger image or a shorter message")
	ErrNoMorePixels          = errors.New("ran out of pixels while encoding the message")
)

// Cipher encrypts the message before it is hidden, and decrypts it once recovered.
type Cipher interface {
	Encrypt(plaintext []byte, password string) ([]byte, error)
	Decrypt(ciphertext []byte, password string) ([]byte, error)
}

// Encoder hides an encrypted message in the least significant bit of the red, green and blue channels of an image,
// three bits per pixel in raster order. Every pixel after the message gets random LSBs, so the length of the
// message cannot be read from the image.
type Encoder struct {
	image  Canvas
	cipher Cipher
	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(img Canvas, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	iConfig.PopulateUnsetConfigVars()
	aesCipher, err := cipher.NewAES(iConfig.IVMode)
	if err != nil {
		return nil, err
	}
	return NewImageEncoderWithCipher(img, aesCipher, iConfig), nil
}

func NewImageEncoderWithCipher(img Canvas, c Cipher, iConfig config.ImageEncodeConfig) *Encoder {
	iConfig.PopulateUnsetConfigVars()
	return &Encoder{
		image:  img,
		cipher: c,
		config: iConfig,
	}
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

func (e *Encoder) Image() Canvas {
	return e.image
}

// Encode encrypts message with password and hides it in the image. Nothing in the image is modified if the
// message, the password or the image size is rejected.
func (e *Encoder) Encode(message, password string) error {
	e.stats = model.EncodeStats{}

	br, err := e.setupPayloadReader(message, password)
	if err != nil {
		return err
	}

	return e.encodeBitsToImage(br)
}

func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return WritePNG(output, e.image, e.config.PngCompressionLevel)
}

func (e *Encoder) setupPayloadReader(message, password string) (*bits.BitReader, error) {
	setupStart := time.Now()
	defer func() {
		e.stats.Setup = time.Since(setupStart)
	}()

	if !bits.IsSingleByte(message) {
		return nil, ErrMessageNotSingleByte
	}
	if !bits.IsSingleByte(password) {
		return nil, ErrPasswordNotSingleByte
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	payload, err := e.cipher.Encrypt([]byte(message), password)
	if err != nil {
		return nil, err
	}
	payload = append(payload, e.config.Terminator)

	br := bits.NewBitReaderFromBytes(payload)
	e.stats.PayloadBits = br.Len()
	e.stats.CapacityBits = NewCursor(e.image.Bounds()).CapacityBits()
	if e.stats.CapacityBits <= e.stats.PayloadBits {
		return nil, ErrImageNotBigEnough
	}
	return br, nil
}

func (e *Encoder) encodeBitsToImage(br *bits.BitReader) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	cursor := NewCursor(e.image.Bounds())
	for {
		// The last pixel may receive fewer than 3 bits, its remaining channels are left as they are
		e.storeBitsAt(cursor, br.ReadBits(channelsToWrite))
		if br.BitsLeftToRead() == 0 {
			break
		}
		if err := cursor.Advance(); err != nil {
			return ErrNoMorePixels
		}
	}

	if err := cursor.Advance(); err != nil {
		// message ends on the last pixel, nothing to pad
		return nil
	}
	e.storeRandomBitsFrom(cursor)
	return nil
}

func (e *Encoder) storeBitsAt(cursor *Cursor, bitsToStore []bool) {
	x, y := e.absolute(cursor)
	pixel := e.image.NRGBAAt(x, y)
	channels := pixelChannels(&pixel)
	for i, bit := range bitsToStore {
		channel := bits.NewByte(*channels[i])
		channel.StoreBit(bit)
		*channels[i] = channel.Value()
	}
	e.image.SetNRGBA(x, y, pixel)
}

// storeRandomBitsFrom randomizes the LSBs of every pixel from the cursor position to the end of the image.
func (e *Encoder) storeRandomBitsFrom(cursor *Cursor) {
	for {
		x, y := e.absolute(cursor)
		pixel := e.image.NRGBAAt(x, y)
		for _, c := range pixelChannels(&pixel) {
			channel := bits.NewByte(*c)
			channel.StoreRandomBit(e.config.RandomSource)
			*c = channel.Value()
		}
		e.image.SetNRGBA(x, y, pixel)

		if cursor.Advance() != nil {
			return
		}
	}
}

func (e *Encoder) absolute(cursor *Cursor) (x, y int) {
	origin := e.image.Bounds().Min
	return origin.X + cursor.X, origin.Y + cursor.Y
}

// MaxMessageLen returns the longest message that can be hidden in an image with the supplied bounds, or -1 if the
// image cannot even hold an empty message.
func MaxMessageLen(bounds image.Rectangle, c *cipher.AES) int {
	capacity := NewCursor(bounds).CapacityBits()
	if capacity < 1 {
		return -1
	}
	// Payload bits must be strictly less than the capacity, and the terminator takes a byte
	ciphertextLen := (capacity-1)/bits.BitsPerByte - 1
	return c.MaxPlaintextLen(ciphertextLen)
}

func Capacity(bounds image.Rectangle, c *cipher.AES) model.Capacity {
	cursor := NewCursor(bounds)
	width, height := cursor.Dimensions()
	return model.Capacity{
		Width:           width,
		Height:          height,
		CapacityBits:    cursor.CapacityBits(),
		MaxMessageBytes: MaxMessageLen(bounds, c),
	}
}
