package image

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"stegano/internal/bits"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	"testing"
)

const (
	testPassword = "Password"
)

type testFunc func(t *testing.T, randomizePixelOpaqueness bool)

func runImageTestsWithAllOpaquenessSettings(t *testing.T, testFunc testFunc) {
	t.Run("opaque", func(t *testing.T) {
		t.Parallel()
		testFunc(t, false)
	})
	t.Run("non-opaque", func(t *testing.T) {
		t.Parallel()
		testFunc(t, true)
	})
}

func generateImage(width, height int, randomizePixelOpaqueness bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if randomizePixelOpaqueness && rand.Int()%(rand.Int()%4+1) == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: randUint8()})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: 255})
			}
		}
	}
	return img
}

func generateUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	return ToNRGBA(img)
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

// readLSBs reads the LSB of the first channelsToRead channels in raster order.
func readLSBs(img *image.NRGBA, channelsToRead int) []bool {
	lsbs := make([]bool, 0, channelsToRead)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && len(lsbs) < channelsToRead; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && len(lsbs) < channelsToRead; x++ {
			pixel := img.NRGBAAt(x, y)
			for _, channel := range pixelChannels(&pixel) {
				if len(lsbs) == channelsToRead {
					break
				}
				lsbs = append(lsbs, *channel&1 == 1)
			}
		}
	}
	return lsbs
}

func assertImagesEqual(t *testing.T, expected, actual *image.NRGBA) {
	t.Helper()
	if expected.Bounds() != actual.Bounds() {
		t.Fatalf("Image bounds differ, expected %v, got %v", expected.Bounds(), actual.Bounds())
	}
	for i := range expected.Pix {
		if expected.Pix[i] != actual.Pix[i] {
			t.Fatalf("Images differ at byte %d (pixel %d), expected %d, got %d", i, i/4, expected.Pix[i], actual.Pix[i])
		}
	}
}

// identityCipher hides the message as is, so tests can predict every bit written to the image.
type identityCipher struct{}

func (identityCipher) Encrypt(plaintext []byte, _ string) ([]byte, error) {
	return append([]byte{}, plaintext...), nil
}

func (identityCipher) Decrypt(ciphertext []byte, _ string) ([]byte, error) {
	return append([]byte{}, ciphertext...), nil
}

var errTestMarkerMissing = errors.New("marker missing")

// markerCipher appends a marker byte on encryption and refuses to decrypt anything not ending with it.
type markerCipher struct {
	marker byte
}

func (m markerCipher) Encrypt(plaintext []byte, _ string) ([]byte, error) {
	return append(append([]byte{}, plaintext...), m.marker), nil
}

func (m markerCipher) Decrypt(ciphertext []byte, _ string) ([]byte, error) {
	if len(ciphertext) == 0 || ciphertext[len(ciphertext)-1] != m.marker {
		return nil, errTestMarkerMissing
	}
	return append([]byte{}, ciphertext[:len(ciphertext)-1]...), nil
}

var errTestCipher = errors.New("cipher failure")

type failingCipher struct{}

func (failingCipher) Encrypt([]byte, string) ([]byte, error) {
	return nil, errTestCipher
}

func (failingCipher) Decrypt([]byte, string) ([]byte, error) {
	return nil, errTestCipher
}

func newTestEncoder(img Canvas, c Cipher, padding bits.RandomSource) *Encoder {
	return NewImageEncoderWithCipher(img, c, config.ImageEncodeConfig{RandomSource: padding})
}

func newTestDecoder(img Canvas, c Cipher) *Decoder {
	return NewImageDecoderWithCipher(img, c, config.ImageDecodeConfig{CiphertextAlignment: 1})
}

func mustAES(t testing.TB, iConfig config.ImageEncodeConfig) *cipher.AES {
	t.Helper()
	iConfig.PopulateUnsetConfigVars()
	aesCipher, err := cipher.NewAES(iConfig.IVMode)
	if err != nil {
		t.Fatalf("Error creating cipher: %s", err)
	}
	return aesCipher
}
